// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import "golang.org/x/xerrors"

// ConfigurationError represents a configuration error. When used, it should ideally also point towards the
// configuration value that caused this error to occur.
type ConfigurationError struct {
	E error
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(msg string, a ...any) ConfigurationError {
	return ConfigurationError{E: xerrors.Errorf(msg, a...)}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ConfigurationError) Error() string {
	return e.E.Error()
}

// InputError is an error caused by user input
type InputError struct {
	E error
}

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return InputError{E: xerrors.Errorf(msg, a...)}
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InputError) Error() string {
	return e.E.Error()
}

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it and
// would need to reach out to us for support.
type InternalError struct {
	E error
}

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return InternalError{E: xerrors.Errorf(msg, a...)}
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InternalError) Error() string {
	return e.E.Error()
}

// SystemError is returned when the CLI encountered a system error. This is most likely either an error during file
// read or a network error.
type SystemError struct {
	E error
}

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return SystemError{E: xerrors.Errorf(msg, a...)}
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SystemError) Error() string {
	return e.E.Error()
}

// MalformedReferenceError is returned when a build reference (most likely a build URL) could not be parsed.
// The user needs to fix their input.
type MalformedReferenceError struct {
	E error
}

// NewMalformedReferenceError returns a new MalformedReferenceError
func NewMalformedReferenceError(msg string, a ...any) MalformedReferenceError {
	return MalformedReferenceError{E: xerrors.Errorf(msg, a...)}
}

// AsMalformedReferenceError checks whether the error is a malformed reference error
func AsMalformedReferenceError(err error) (MalformedReferenceError, bool) {
	var e MalformedReferenceError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e MalformedReferenceError) Error() string {
	return e.E.Error()
}

// BuildNotFoundError is returned when no build could be located for a given commit. The API query erroring, an
// empty result set, and an unexpected response shape all collapse into this one error - the distinction is not
// actionable for an end-user.
type BuildNotFoundError struct {
	E error
}

// NewBuildNotFoundError returns a new BuildNotFoundError
func NewBuildNotFoundError(msg string, a ...any) BuildNotFoundError {
	return BuildNotFoundError{E: xerrors.Errorf(msg, a...)}
}

// AsBuildNotFoundError checks whether the error is a build not found error
func AsBuildNotFoundError(err error) (BuildNotFoundError, bool) {
	var e BuildNotFoundError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e BuildNotFoundError) Error() string {
	return e.E.Error()
}

// NoArtifactsFoundError is returned when a build has no artifacts matching the requested filename. This is an
// error rather than an empty success - an empty listing usually means the pipeline stopped uploading reports.
type NoArtifactsFoundError struct {
	E error
}

// NewNoArtifactsFoundError returns a new NoArtifactsFoundError
func NewNoArtifactsFoundError(msg string, a ...any) NoArtifactsFoundError {
	return NoArtifactsFoundError{E: xerrors.Errorf(msg, a...)}
}

// AsNoArtifactsFoundError checks whether the error is a no artifacts found error
func AsNoArtifactsFoundError(err error) (NoArtifactsFoundError, bool) {
	var e NoArtifactsFoundError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e NoArtifactsFoundError) Error() string {
	return e.E.Error()
}

// StorageResolutionError is returned when an artifact's ephemeral storage location could not be resolved from its
// download URL.
type StorageResolutionError struct {
	E error
}

// NewStorageResolutionError returns a new StorageResolutionError
func NewStorageResolutionError(msg string, a ...any) StorageResolutionError {
	return StorageResolutionError{E: xerrors.Errorf(msg, a...)}
}

// AsStorageResolutionError checks whether the error is a storage resolution error
func AsStorageResolutionError(err error) (StorageResolutionError, bool) {
	var e StorageResolutionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e StorageResolutionError) Error() string {
	return e.E.Error()
}

// ArtifactTooLargeError is returned when an artifact's contents exceed the maximum buffer size. Truncated test
// reports would silently drop test cases, so this is fatal.
type ArtifactTooLargeError struct {
	E error
}

// NewArtifactTooLargeError returns a new ArtifactTooLargeError
func NewArtifactTooLargeError(msg string, a ...any) ArtifactTooLargeError {
	return ArtifactTooLargeError{E: xerrors.Errorf(msg, a...)}
}

// AsArtifactTooLargeError checks whether the error is an artifact too large error
func AsArtifactTooLargeError(err error) (ArtifactTooLargeError, bool) {
	var e ArtifactTooLargeError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ArtifactTooLargeError) Error() string {
	return e.E.Error()
}

// BlobFetchError is returned when the external blob-retrieval tool failed to produce an artifact's contents.
// This is commonly an environment problem (tool not installed, no ambient authorization) rather than a bug, so it
// renders with a resolution hint.
type BlobFetchError struct {
	E    error
	Tool string
}

// NewBlobFetchError returns a new BlobFetchError
func NewBlobFetchError(tool string, msg string, a ...any) BlobFetchError {
	return BlobFetchError{Tool: tool, E: xerrors.Errorf(msg, a...)}
}

// AsBlobFetchError checks whether the error is a blob fetch error
func AsBlobFetchError(err error) (BlobFetchError, bool) {
	var e BlobFetchError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e BlobFetchError) Error() string {
	return e.E.Error()
}

// Description describes the circumstances under which this error occurs.
func (e BlobFetchError) Description() string {
	return "Artifact contents live in a storage bucket that the Buildkite API token cannot read. Spotter " +
		"retrieves them through the '" + e.Tool + "' command-line tool, which either is not installed or was " +
		"unable to access the object."
}

// Resolution hints at how an operator can recover from this error.
func (e BlobFetchError) Resolution() string {
	return "Ensure that '" + e.Tool + "' is installed and on your PATH, and that it is authorized to read the " +
		"artifact bucket (for gsutil, run 'gcloud auth login' with an account that has storage access)."
}

// Type returns the category of this error as it should appear to an end-user.
func (e BlobFetchError) Type() string {
	return "Blob fetch error"
}
