// Package cmd provides CLI commands for the selectql tool.
//
// # Available Commands
//
//   - parse: parse a statement and print its tree as JSON or YAML
//   - check: validate one .sql file or every .sql file under a directory
//   - fmt: rewrite statements as canonical SQL
//   - init: write a default selectql.yaml
//
// Each command is implemented as a function returning a *cli.Command,
// following the urfave/cli/v3 pattern, and registered with the fx "commands"
// group in Module.
//
// # Global Options
//
//   - --dir, -d: project directory (defaults to current directory)
//   - --verbose: enable debug logging
//
// # Example Usage
//
//	selectql parse "select first_name from users where id=3"
//	selectql parse -o yaml -f query.sql
//	selectql check queries/
//	selectql fmt -w queries/
//	selectql init
package cmd
