package main

// Command names referenced outside their own file.
const tuiCommand = "tui"

// DefaultDBFile is the table store written by 'dex import' when no path is configured.
const DefaultDBFile = "dex.db"

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}

// Tables selectable for CSV export.
var validTables = []string{"pokemon", "locations"}
