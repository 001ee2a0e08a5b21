// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/devkit-vault/internal/crypto"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/store"
	"github.com/MKhiriev/devkit-vault/models"
)

// aadPrefix is prepended to the record version to form the associated data.
const aadPrefix = "devkit-vault/record/v"

// Object is the decrypted vault: a flat mapping from key to JSON value.
type Object map[string]json.RawMessage

// DecryptStatus tells apart the three outcomes of [BlobStore.Decrypt].
type DecryptStatus int

const (
	// StatusEmpty means no record has been persisted yet.
	StatusEmpty DecryptStatus = iota
	// StatusFailed means a record exists but did not authenticate.
	StatusFailed
	// StatusOK means the record decrypted and parsed.
	StatusOK
)

func (s DecryptStatus) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	case StatusOK:
		return "ok"
	}
	return "unknown"
}

// DecryptResult is the tagged result of [BlobStore.Decrypt]. When Err is set
// the storage or key could not be used and Status carries no meaning.
type DecryptResult struct {
	Status DecryptStatus
	// Object is non-nil for StatusEmpty and StatusOK.
	Object Object
	// Version of the record that was read, 0 for StatusEmpty.
	Version int64
	Err     error
}

// BlobStore seals the whole vault object into the single persisted record.
type BlobStore struct {
	records store.VaultRecordRepository
	alg     crypto.Algorithm
	logger  *logger.Logger
}

// NewBlobStore returns a BlobStore that writes new records with alg. Records
// are always opened with the algorithm they were written with.
func NewBlobStore(records store.VaultRecordRepository, alg crypto.Algorithm, logger *logger.Logger) *BlobStore {
	return &BlobStore{
		records: records,
		alg:     alg,
		logger:  logger,
	}
}

// Encrypt serialises obj, seals it under key with a fresh nonce and replaces
// the stored record if its version still equals expectedVersion. The
// returned record carries the new version.
func (b *BlobStore) Encrypt(ctx context.Context, key *crypto.MasterKey, obj Object, expectedVersion int64) (models.VaultRecord, error) {
	if obj == nil {
		obj = Object{}
	}
	plaintext, err := json.Marshal(obj)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("encode vault object: %w", err)
	}

	newVersion := expectedVersion + 1
	ciphertext, nonce, err := key.Encrypt(b.alg, plaintext, associatedData(newVersion))
	if err != nil {
		b.logger.Err(err).Str("func", "BlobStore.Encrypt").Msg("failed to seal vault object")
		return models.VaultRecord{}, fmt.Errorf("seal vault object: %w", err)
	}

	rec := models.VaultRecord{
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Algorithm:  string(b.alg),
	}

	version, err := b.records.SaveRecord(ctx, rec, expectedVersion)
	if errors.Is(err, store.ErrVersionConflict) {
		b.logger.Warn().
			Str("func", "BlobStore.Encrypt").
			Int64("expected_version", expectedVersion).
			Msg("vault record changed since it was read")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrStaleWrite, err)
	}
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("persist vault record: %w", err)
	}
	if version != newVersion {
		// the record was sealed for newVersion
		return models.VaultRecord{}, fmt.Errorf("%w: repository returned version %d, want %d", ErrStaleWrite, version, newVersion)
	}

	rec.Version = version
	return rec, nil
}

// Decrypt reads and opens the stored record.
func (b *BlobStore) Decrypt(ctx context.Context, key *crypto.MasterKey) DecryptResult {
	rec, found, err := b.records.GetRecord(ctx)
	if err != nil {
		return DecryptResult{Err: fmt.Errorf("read vault record: %w", err)}
	}
	if !found {
		return DecryptResult{Status: StatusEmpty, Object: Object{}}
	}

	failed := DecryptResult{Status: StatusFailed, Version: rec.Version}

	nonce, err := base64.StdEncoding.DecodeString(rec.IV)
	if err != nil {
		b.logger.Warn().Str("func", "BlobStore.Decrypt").Msg("stored iv is not base64")
		return failed
	}
	ciphertext, err := base64.StdEncoding.DecodeString(rec.Ciphertext)
	if err != nil {
		b.logger.Warn().Str("func", "BlobStore.Decrypt").Msg("stored ciphertext is not base64")
		return failed
	}

	alg := crypto.AESGCM
	if rec.Algorithm != "" {
		if alg, err = crypto.ParseAlgorithm(rec.Algorithm); err != nil {
			b.logger.Warn().Str("func", "BlobStore.Decrypt").Str("alg", rec.Algorithm).Msg("unknown record algorithm")
			return failed
		}
	}

	plaintext, err := key.Decrypt(alg, ciphertext, nonce, associatedData(rec.Version))
	if errors.Is(err, crypto.ErrKeyDestroyed) {
		return DecryptResult{Err: fmt.Errorf("%w: %w", ErrVaultLocked, err)}
	}
	if err != nil {
		b.logger.Debug().Str("func", "BlobStore.Decrypt").Int64("version", rec.Version).Msg("vault record did not authenticate")
		return failed
	}

	var obj Object
	if err := json.Unmarshal(plaintext, &obj); err != nil {
		b.logger.Warn().Str("func", "BlobStore.Decrypt").Msg("authenticated plaintext is not a JSON object")
		return failed
	}
	if obj == nil {
		obj = Object{}
	}

	return DecryptResult{Status: StatusOK, Object: obj, Version: rec.Version}
}

func associatedData(version int64) []byte {
	return []byte(aadPrefix + strconv.FormatInt(version, 10))
}
