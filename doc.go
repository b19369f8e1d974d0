// Package tomlpretty renders structured data as a readable TOML document.
//
// Nested objects are flattened into dotted keys, so the output is a flat list
// of key = value lines with no [table] headers. The central entry points are
// [ToString], [Marshal] and [Write]:
//
//	s, err := tomlpretty.ToString(user, tomlpretty.DefaultOptions())
//
// # Pipeline
//
// A call runs three stages:
//
//   - [Project] turns the input into an ordered [Value] tree. Structs go
//     through encoding/json, so json tags and field order apply.
//   - [Flatten] collapses nested objects into [Entry] values keyed by dotted
//     paths.
//   - [Format] renders each entry on its own line.
//
// Types can implement [Valuer] to build their own tree. A yaml.Node is
// converted directly, and [Decode] reads JSON or YAML text.
//
// # Arrays
//
// Arrays stay on one line when [Options.InlineArray] is set or when the
// rendered elements fit in [Options.MaxInlineArrayLength] characters. Otherwise
// each element goes on its own line, indented by [Options.Tab]. Objects inside
// arrays render as inline tables:
//
//	more = [
//		{ day = 0, month = 0, year = 1980 },
//		{ day = 0, month = 0, year = 1980 }
//	]
//
// Arrays may nest two levels deep. A third level fails with
// [ErrTripleNestedArray].
//
// # Strings
//
// Strings containing a newline render as a triple-quoted block. Other strings
// are double-quoted with embedded quotes escaped.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrProjection] — the input could not be turned into an object tree
//   - [ErrWrite] — writing the document failed
//   - [ErrTripleNestedArray] — arrays nested three levels deep
//   - [ErrObjectReached] — a non-empty object reached the formatter
//   - [ErrUnsupportedFormat] — unknown input format name
package tomlpretty
