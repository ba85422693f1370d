// Package codegen assembles Python source files from a tree of nodes.
//
// Node variants:
//   - Line: literal text
//   - Method and Constructor: "def" blocks, an empty body renders as "pass"
//   - Class: "class" block with an optional super class
//   - Module: a single .py file starting with a coding header
//   - Package: a directory of modules, always holding one "__init__" module
//
// Every node renders its children in insertion order, shifting the
// indentation by the delta recorded when the child was added.
package codegen
