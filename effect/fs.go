package effect

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FSHandler is the real [Handler]: it performs the described filesystem
// action and maps OS failures onto the closed [Result] vocabulary.
type FSHandler struct {
	logger *zap.Logger
}

// FSHandlerOption configures an [FSHandler].
type FSHandlerOption func(*FSHandler)

// FSLogger sets the logger used to report failed operations.
func FSLogger(logger *zap.Logger) FSHandlerOption {
	return func(h *FSHandler) {
		h.logger = logger
	}
}

// NewFSHandler creates a filesystem-backed [Handler].
func NewFSHandler(opts ...FSHandlerOption) *FSHandler {
	h := &FSHandler{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Handle performs the described operation. It panics on an Op outside the
// closed vocabulary.
func (h *FSHandler) Handle(e Effect) Result {
	res := h.interpret(e)
	if res.Status != StatusOK {
		h.logger.Warn("effect failed",
			zap.Stringer("op", e.Op),
			zap.String("path", e.Path),
			zap.Stringer("status", res.Status),
			zap.String("diagnostic", res.Diagnostic),
		)
	}

	return res
}

func (h *FSHandler) interpret(e Effect) Result {
	switch e.Op {
	case OpReadFile:
		data, err := os.ReadFile(e.Path)
		if err != nil {
			return mapOSError(err)
		}

		return OK(string(data))

	case OpWriteFile:
		if err := os.WriteFile(e.Path, []byte(e.Content), filePerm); err != nil {
			return mapOSError(err)
		}

		return OK("")

	case OpDeleteFile:
		if err := os.Remove(e.Path); err != nil {
			return mapOSError(err)
		}

		return OK("")

	case OpFileExists:
		// A missing path is a successful check, not a failure; the payload
		// stays textual for uniformity of the result type.
		_, err := os.Stat(e.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return OK(strconv.FormatBool(false))
			}

			return mapOSError(err)
		}

		return OK(strconv.FormatBool(true))

	case OpMakeDir:
		if err := os.Mkdir(e.Path, dirPerm); err != nil {
			return mapOSError(err)
		}

		return OK("")

	case OpListDir:
		entries, err := os.ReadDir(e.Path)
		if err != nil {
			return mapOSError(err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}

		return OK(strings.Join(names, "\n"))

	default:
		panic("effect: unknown op " + e.Op.String())
	}
}

// mapOSError translates an OS failure into the Result vocabulary.
func mapOSError(err error) Result {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound()
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied()
	default:
		return IOError(err.Error())
	}
}
