package effect

// Op enumerates the closed set of filesystem operation kinds a [Handler]
// must support in full. A handler receiving an Op outside this set is
// facing a programming error, not a runtime-recoverable condition.
type Op int

const (
	// OpReadFile reads a file's contents.
	OpReadFile Op = iota
	// OpWriteFile writes content to a file, creating or truncating it.
	OpWriteFile
	// OpDeleteFile removes a file.
	OpDeleteFile
	// OpFileExists checks whether a path exists.
	OpFileExists
	// OpMakeDir creates a directory.
	OpMakeDir
	// OpListDir lists a directory's entries.
	OpListDir
)

// String returns the operation kind as a human-readable string.
func (op Op) String() string {
	switch op {
	case OpReadFile:
		return "read_file"
	case OpWriteFile:
		return "write_file"
	case OpDeleteFile:
		return "delete_file"
	case OpFileExists:
		return "file_exists"
	case OpMakeDir:
		return "make_dir"
	case OpListDir:
		return "list_dir"
	default:
		return "unknown"
	}
}

// Effect is an inert descriptor of an intended filesystem operation: an
// operation kind plus its parameters. It carries no behavior — construction
// has no side effects, and descriptors may be built, inspected, and compared
// by code that will never execute them. Only the fields relevant to Op are
// meaningful; the rest stay zero.
type Effect struct {
	// Op is the operation kind.
	Op Op
	// Path is the filesystem path the operation targets.
	Path string
	// Content is the payload for OpWriteFile.
	Content string
}

// ReadFile describes reading the file at path.
func ReadFile(path string) Effect {
	return Effect{Op: OpReadFile, Path: path}
}

// WriteFile describes writing content to the file at path.
func WriteFile(path, content string) Effect {
	return Effect{Op: OpWriteFile, Path: path, Content: content}
}

// DeleteFile describes removing the file at path.
func DeleteFile(path string) Effect {
	return Effect{Op: OpDeleteFile, Path: path}
}

// FileExists describes checking whether path exists.
func FileExists(path string) Effect {
	return Effect{Op: OpFileExists, Path: path}
}

// MakeDir describes creating a directory at path.
func MakeDir(path string) Effect {
	return Effect{Op: OpMakeDir, Path: path}
}

// ListDir describes listing the entries of the directory at path.
func ListDir(path string) Effect {
	return Effect{Op: OpListDir, Path: path}
}
