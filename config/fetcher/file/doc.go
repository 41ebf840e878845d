// Package file provides a file-based DataFetcher implementation for the config package.
//
// Files are read through an afero.Fs: the operating system filesystem by
// default, or any other afero filesystem passed with WithFs (an in-memory
// filesystem in tests, a read-only or base-path filesystem in production).
//
// The file is read at construction time and cached, so every Fetch returns
// the same bytes and the Tree built from them cannot drift from what was
// loaded at startup.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
