package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPublicKeyHex = "C7719C6808C14B77348004956D1D98046CE09A34370E7608150EAD74C3815D30"
	testClassicalHex = testPublicKeyHex + "C8BA3AB9BEB9"
	testPQHex        = testPublicKeyHex + "0102030405060708C8BA3AB9BEB1"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := runCommand(t, "", "inspect", testPQHex)
	require.NoError(t, err)

	assert.Contains(t, out, "variant:    post-quantum")
	assert.Contains(t, out, "valid:      true")
	assert.Contains(t, out, "public key: "+testPublicKeyHex)
	assert.Contains(t, out, "commitment: 0102030405060708")
	assert.Contains(t, out, "nospam:     C8BA3AB9")
	assert.Contains(t, out, "checksum:   BEB1")
	assert.NotContains(t, out, "identity:")
}

func TestInspectCorruptedPostQuantum(t *testing.T) {
	corrupted := testPQHex[:88] + "0000"
	out, err := runCommand(t, "", "inspect", corrupted)
	require.NoError(t, err)

	assert.Contains(t, out, "variant:    post-quantum")
	assert.Contains(t, out, "valid:      false")
	assert.Contains(t, out, "commitment: 0102030405060708")
	assert.Contains(t, out, "checksum:   0000")
	assert.NotContains(t, out, "verified")
}

func TestInspectClassicalHasNoCommitment(t *testing.T) {
	out, err := runCommand(t, "", "inspect", strings.ToLower(testClassicalHex))
	require.NoError(t, err)

	assert.Contains(t, out, "address:    "+testClassicalHex)
	assert.Contains(t, out, "variant:    classical")
	assert.NotContains(t, out, "commitment:")
}

func TestInspectMalformed(t *testing.T) {
	_, err := runCommand(t, "", "inspect", testPublicKeyHex)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address must be 76 or 92 hex characters")
}

func TestValidate(t *testing.T) {
	out, err := runCommand(t, "", "validate", testClassicalHex, testPQHex)
	require.NoError(t, err)
	assert.Contains(t, out, "valid\t"+testClassicalHex)
	assert.Contains(t, out, "valid\t"+testPQHex)

	badChecksum := testClassicalHex[:72] + "0000"
	out, err = runCommand(t, "", "validate", testClassicalHex, badChecksum, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 addresses failed validation")
	assert.Contains(t, out, "bad-checksum\t"+badChecksum)
	assert.Contains(t, out, "malformed\tnope")
}

func TestScanStdin(t *testing.T) {
	text := "hi, add me " + testClassicalHex + " or my new one\n" + testPQHex + "\n"
	out, err := runCommand(t, text, "scan")
	require.NoError(t, err)
	assert.Equal(t, "classical\t"+testClassicalHex+"\npost-quantum\t"+testPQHex+"\n", out)

	out, err = runCommand(t, text, "scan", "--pq-only")
	require.NoError(t, err)
	assert.Equal(t, "post-quantum\t"+testPQHex+"\n", out)
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")
	require.NoError(t, os.WriteFile(path, []byte(testClassicalHex[:72]+"0000"), 0o600))

	out, err := runCommand(t, "", "scan", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCommand(t, "", "scan", "--allow-bad-checksum", path)
	require.NoError(t, err)
	assert.Contains(t, out, testClassicalHex[:72]+"0000")

	_, err = runCommand(t, "", "scan", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestScanExclusiveFlags(t *testing.T) {
	_, err := runCommand(t, "", "scan", "--pq-only", "--classical-only")
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, err := runCommand(t, "", "generate", "--public-key", testPublicKeyHex, "--nospam", "C8BA3AB9")
	require.NoError(t, err)
	assert.Equal(t, testClassicalHex+"\n", out)

	out, err = runCommand(t, "", "generate",
		"--public-key", testPublicKeyHex,
		"--nospam", "c8ba3ab9",
		"--commitment", "0102030405060708")
	require.NoError(t, err)
	assert.Equal(t, testPQHex+"\n", out)
}

func TestGenerateRandomNoSpam(t *testing.T) {
	out, err := runCommand(t, "", "generate", "--public-key", testPublicKeyHex)
	require.NoError(t, err)

	line := strings.TrimSpace(out)
	require.Len(t, line, 76)
	assert.True(t, strings.HasPrefix(line, testPublicKeyHex))

	verify, err := runCommand(t, "", "validate", line)
	require.NoError(t, err)
	assert.Contains(t, verify, "valid\t"+line)
}

func TestGenerateErrors(t *testing.T) {
	_, err := runCommand(t, "", "generate")
	require.Error(t, err, "public key is required")

	_, err = runCommand(t, "", "generate", "--public-key", "abc")
	require.Error(t, err)

	_, err = runCommand(t, "", "generate", "--public-key", testPublicKeyHex, "--nospam", "xyz")
	require.Error(t, err)

	_, err = runCommand(t, "", "generate", "--public-key", testPublicKeyHex, "--commitment", "01")
	require.Error(t, err)
}
