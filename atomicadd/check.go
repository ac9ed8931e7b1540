package atomicadd

import "os"
import "runtime"

import "github.com/pkg/errors"
import "github.com/rs/zerolog"

// ErrNoDevice is reported when no usable accelerator is present.
var ErrNoDevice = errors.New("no CUDA device")

// AbortCode is the exit status used after an unrecoverable device error.
const AbortCode = 134

var (
	diag = zerolog.New(os.Stderr).With().Timestamp().Logger()
	exit = os.Exit
)

// Check terminates the process when err reports a failed device call op. The
// diagnostic names op, the calling source location and the device error.
// There is no retry.
func Check(op string, err error) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	diag.Error().
		Str("op", op).
		Str("file", file).
		Int("line", line).
		Str("error", errors.Cause(err).Error()).
		Msg("GPU error")
	exit(AbortCode)
}
