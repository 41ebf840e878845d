// Package config reads strongly typed values out of a hierarchical configuration.
//
// A Handle is an immutable tree of string keys whose values are scalars,
// lists or nested trees. An Accessor[T] turns the value at a dot separated
// path into a T, and the accessor passed by the caller, not the shape of the
// stored value, decides which coercion applies:
//
//	port, err := config.Get(tree, "server.port", config.Int)
//	timeout, err := config.Get(tree, "server.timeout", config.Duration)
//	hosts, err := config.Get(tree, "server.hosts", config.Slice(config.String))
//
// # Built-in accessors
//
//   - String, Bool, Int (int32), Int64, Float64
//   - Duration ("10s", "250 ms", "2d"), Period ("P1Y2M", "3 weeks"),
//     MemorySize ("256M", binary units)
//   - Subtree for nested trees
//
// # Derived accessors
//
//   - Enum(constants...) matches a string against the constants' String()
//     names, case sensitively
//   - Slice(elem) and Set(elem) read lists element by element
//   - Map(elem) reads every child of a tree
//
// # Errors
//
// Every failure wraps one of ErrNotFound, ErrWrongType or ErrParse and names
// the path, so callers classify with errors.Is. Nothing is defaulted
// silently: use GetOr or Lookup when absence is acceptable.
//
// # Loading
//
// Provider connects a DataFetcher (see config/fetcher/file) and a Parser
// (see config/parser/yaml and config/parser/json) and freezes the decoded
// document into a Tree:
//
//	fetcher, err := filefetcher.NewFetcher("config.yaml")()
//	tree, err := config.Provider("")(yamlparser.NewParser(), fetcher)
package config
