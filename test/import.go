package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// testdata returns the path of the testdata directory of the repository.
func testdata() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "testdata")
}

// LoadTestFile loads a file from the testdata directory as multipart form
// upload named "file".
//
// The request body is returned together with the HTTP request headers.
func LoadTestFile(t *testing.T, name string) (*bytes.Buffer, map[string]string) {
	f, err := os.Open(filepath.Join(testdata(), name))
	require.Nil(t, err)
	defer f.Close()

	return MultipartFile(t, name, f)
}

// MultipartFile returns a multipart form body with the content uploaded as
// "file" with the given file name.
func MultipartFile(t *testing.T, name string, content io.Reader) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	require.Nil(t, err)

	_, err = io.Copy(w, content)
	require.Nil(t, err)

	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
