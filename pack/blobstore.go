package pack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// ErrBlobNotFound is returned by BlobStore.Get when digest has no
// stored blob. Mirrors the teacher's own ErrBlobNotFound
// (massifs/blobnotfounderr.go), generalized from massif blobs to
// content-addressed pack blobs.
var ErrBlobNotFound = errors.New("pack: blob not found")

// BlobStore reads and writes the opaque, content-addressed lawpack /
// regpack / licensepack bundles spec.md §4.10 and §6.3 describe: the
// core never interprets their bytes, only their digest. It is backed
// by the teacher's own object-store dependency
// (azure-sdk-for-go/sdk/storage/azblob, massifs/objectstore.go's own
// choice), generalized from "massif blob" storage to "pack blob"
// storage keyed by ContentDigest hex rather than massif index.
type BlobStore struct {
	client    *azStorageBlob.Client
	container string
}

// NewBlobStore wraps an already-constructed azblob client scoped to
// container, the storage account holding this corridor's pack blobs.
func NewBlobStore(client *azStorageBlob.Client, container string) *BlobStore {
	return &BlobStore{client: client, container: container}
}

// blobPath is the storage path a digest resolves to: packs are
// sharded two-hex-characters deep, matching the teacher's own
// tenant/blob path convention (massifs/tenantblobpaths.go) adapted from
// tenant-id sharding to digest-prefix sharding.
func blobPath(digestHex string) string {
	if len(digestHex) < 2 {
		return "packs/" + digestHex
	}
	return fmt.Sprintf("packs/%s/%s", digestHex[:2], digestHex)
}

// Put uploads the bytes for a pack identified by its content digest.
// The digest is never derived from data here — callers MUST have
// already computed it via canon.Sha256Digest and verified data matches
// before calling Put; BlobStore just persists bytes keyed by a
// caller-supplied name.
func (s *BlobStore) Put(ctx context.Context, digestHex string, data []byte) error {
	_, err := s.client.UploadBuffer(ctx, s.container, blobPath(digestHex), data, nil)
	if err != nil {
		return fmt.Errorf("pack: uploading blob %s: %w", digestHex, wrapBlobNotFound(err))
	}
	return nil
}

// Get downloads the bytes stored under digestHex, returning
// ErrBlobNotFound if no such blob exists.
func (s *BlobStore) Get(ctx context.Context, digestHex string) ([]byte, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, blobPath(digestHex), nil)
	if err != nil {
		return nil, wrapBlobNotFound(err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		return nil, fmt.Errorf("pack: reading blob %s: %w", digestHex, err)
	}
	return buf.Bytes(), nil
}

// storageErrorCode extracts an azblob StorageError's ErrorCode from
// err, if err (or something it wraps) is one. The SDK surfaces
// transport failures as *azStorageBlob.InternalError, which itself
// unwraps to the StorageError carrying the code — the same
// InternalError type-assertion the teacher's own AsStorageError
// performs (massifs/blobnotfounderr.go), collapsed here to return just
// the code string since neither caller needs the full StorageError
// value.
func storageErrorCode(err error) (string, bool) {
	serr := &azStorageBlob.StorageError{}
	ierr, ok := err.(*azStorageBlob.InternalError)
	if ierr == nil || !ok || !ierr.As(&serr) {
		return "", false
	}
	return serr.ErrorCode, true
}

// wrapBlobNotFound translates an azblob "BlobNotFound" storage error
// into one that errors.Is(err, ErrBlobNotFound) recognizes; every
// other error, including nil, passes through unchanged.
func wrapBlobNotFound(err error) error {
	if code, ok := storageErrorCode(err); ok && code == "BlobNotFound" {
		return fmt.Errorf("%s: %w", err.Error(), ErrBlobNotFound)
	}
	return err
}

// IsBlobNotFound reports whether err (or any error it wraps) indicates
// an absent blob, whether or not it was already passed through
// wrapBlobNotFound.
func IsBlobNotFound(err error) bool {
	return errors.Is(wrapBlobNotFound(err), ErrBlobNotFound)
}
