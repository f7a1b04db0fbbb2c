package main

// Process exit codes
const (
	ExitOK               = 0
	ExitMissingParams    = 101
	ExitInvalidConfig    = 102
	ExitTemplateNotFound = 103
	ExitTemplateRender   = 104
	ExitDatabase         = 200
)
