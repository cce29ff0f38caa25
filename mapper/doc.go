// SPDX-License-Identifier: MIT

// Package mapper ties the nerve to its consumers. Build runs a nerve engine
// over a cluster map and returns the Graph record that graph exporters and
// the hypergraph reducer consume:
//
//	clusters ──▶ nerve.Engine ──▶ mapper.Graph{Nodes, Simplices}
//	                                  ├──▶ converters.ToCore / ToGonum (dims 0,1)
//	                                  └──▶ Graph.Hypergraph (all dims)
//
// The record is a plain value: it is recomputed per call and carries no
// state beyond what Build put in it.
package mapper
