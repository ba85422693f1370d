// Package definition describes a Python package in YAML, JSON or TOML and
// turns the description into a codegen.Package.
//
// Example:
//
//	package: test_models
//	modules:
//	  - name: news
//	    classes:
//	      - name: News
//	        body: ["s = None"]
//	        init:
//	          args: [title, content]
//	          named: [{name: author, default: "'admin'"}]
//	        methods:
//	          - name: get_field
//	            args: [name]
//	            body: ["return self.fields[name]"]
package definition
