// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for cluster maps.
var (
	// ErrEmptyID indicates a cluster was added with an empty ID.
	ErrEmptyID = errors.New("cluster: cluster ID is empty")

	// ErrBadDocument indicates a decoded document is not a mapping of
	// cluster IDs to member lists.
	ErrBadDocument = errors.New("cluster: document must map cluster IDs to member lists")
)

// Map is an insertion-ordered mapping cluster ID → member sample IDs.
//
// Members of one cluster are kept unique in order of first appearance.
// The zero value is not usable; call New or FromMap.
type Map struct {
	order   []string
	members map[string][]int
	seen    map[string]map[int]struct{}
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		members: make(map[string][]int),
		seen:    make(map[string]map[int]struct{}),
	}
}

// FromMap builds a Map from a plain Go map. IDs are inserted in ascending
// lexicographic order because Go map iteration order is random.
func FromMap(src map[string][]int) (*Map, error) {
	ids := make([]string, 0, len(src))
	for id := range src {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	m := New()
	for _, id := range ids {
		if err := m.Add(id, src[id]...); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Add registers id (if new) and appends members to it. Adding an existing
// id merges the new members into the old ones; its position is unchanged.
// A cluster may have no members at all.
func (m *Map) Add(id string, members ...int) error {
	if id == "" {
		return ErrEmptyID
	}
	set, ok := m.seen[id]
	if !ok {
		set = make(map[int]struct{}, len(members))
		m.seen[id] = set
		m.order = append(m.order, id)
		m.members[id] = make([]int, 0, len(members))
	}
	for _, s := range members {
		if _, dup := set[s]; dup {
			continue
		}
		set[s] = struct{}{}
		m.members[id] = append(m.members[id], s)
	}

	return nil
}

// Len returns the number of clusters.
func (m *Map) Len() int { return len(m.order) }

// Has reports whether id is a registered cluster.
func (m *Map) Has(id string) bool {
	_, ok := m.seen[id]
	return ok
}

// IDs returns the cluster IDs in insertion order. The slice is a copy.
func (m *Map) IDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

// Members returns a copy of the member list of id and whether id exists.
func (m *Map) Members(id string) ([]int, bool) {
	ms, ok := m.members[id]
	if !ok {
		return nil, false
	}
	out := make([]int, len(ms))
	copy(out, ms)

	return out, true
}

// MemberSet returns the members of id as a set. The returned map is owned
// by the Map and must not be modified.
func (m *Map) MemberSet(id string) map[int]struct{} { return m.seen[id] }

// ToMap returns an unordered copy of the mapping.
func (m *Map) ToMap() map[string][]int {
	out := make(map[string][]int, len(m.order))
	for _, id := range m.order {
		out[id], _ = m.Members(id)
	}

	return out
}

// Decode reads a YAML or JSON document of the form
//
//	cluster_id: [member, member, ...]
//
// keeping the document's key order. An empty document yields an empty Map.
func Decode(r io.Reader) (*Map, error) {
	m := New()
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, fmt.Errorf("cluster: decode: %w", err)
	}

	return m, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It walks the mapping node
// directly so that key order survives decoding.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if m.members == nil {
		*m = *New()
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d", ErrBadDocument, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var members []int
		if !(val.Kind == yaml.ScalarNode && val.Tag == "!!null") {
			if err := val.Decode(&members); err != nil {
				return fmt.Errorf("%w: cluster %q: %v", ErrBadDocument, key.Value, err)
			}
		}
		if err := m.Add(key.Value, members...); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting clusters in order.
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range m.order {
		val := &yaml.Node{}
		if err := val.Encode(m.members[id]); err != nil {
			return nil, err
		}
		val.Style = yaml.FlowStyle
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id}, val)
	}

	return node, nil
}
