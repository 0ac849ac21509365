package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBUnknownDriverError

	// Schema errors
	SchemaCreateError

	// Dataset errors
	DataDirError
	DatasetFileNotFoundError
	DatasetReadError
	DatasetParseError

	// Load errors
	LoadLookupError
	LoadCreateError
	LoadCancelledError

	// Report errors
	ReportCountError
	ReportDeleteError

	// CLI errors
	CLIUnknownActionError
)
