// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/devkit-vault/models"
)

const (
	tableSalt     = "vault_salt"
	tableRecords  = "vault_records"
	tableGrants   = "vault_access_grants"
	tableSettings = "settings"

	// singletonID is the primary key of the one-row tables.
	singletonID = 1

	settingAutoLockTimeout = "autolock_timeout"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSaltQuery() (string, []any, error) {
	return psql.Select("salt").
		From(tableSalt).
		Where(sq.Eq{"id": singletonID}).
		ToSql()
}

func buildInsertSaltQuery(salt models.Salt) (string, []any, error) {
	return psql.Insert(tableSalt).
		Columns("id", "salt").
		Values(singletonID, string(salt)).
		Suffix("ON CONFLICT(id) DO NOTHING").
		ToSql()
}

func buildSelectRecordQuery() (string, []any, error) {
	return psql.Select("iv", "ciphertext", "alg", "version", "updated_at").
		From(tableRecords).
		Where(sq.Eq{"id": singletonID}).
		ToSql()
}

// buildSaveRecordQuery returns an INSERT for the first write and a
// version-guarded UPDATE afterwards. Zero affected rows means the guard
// failed.
func buildSaveRecordQuery(rec models.VaultRecord, expectedVersion int64, now time.Time) (string, []any, error) {
	if expectedVersion == 0 {
		return psql.Insert(tableRecords).
			Columns("id", "iv", "ciphertext", "alg", "version", "updated_at").
			Values(singletonID, rec.IV, rec.Ciphertext, rec.Algorithm, 1, now).
			Suffix("ON CONFLICT(id) DO NOTHING").
			ToSql()
	}

	return psql.Update(tableRecords).
		Set("iv", rec.IV).
		Set("ciphertext", rec.Ciphertext).
		Set("alg", rec.Algorithm).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", now).
		Where(sq.Eq{"id": singletonID, "version": expectedVersion}).
		ToSql()
}

func buildSelectGrantsQuery() (string, []any, error) {
	return psql.Select("plugin_id", "granted", "granted_at").
		From(tableGrants).
		OrderBy("plugin_id").
		ToSql()
}

func buildSelectGrantQuery(pluginID string) (string, []any, error) {
	return psql.Select("granted").
		From(tableGrants).
		Where(sq.Eq{"plugin_id": pluginID}).
		ToSql()
}

func buildUpsertGrantQuery(pluginID string, now time.Time) (string, []any, error) {
	return psql.Insert(tableGrants).
		Columns("plugin_id", "granted", "granted_at").
		Values(pluginID, true, now).
		Suffix("ON CONFLICT(plugin_id) DO UPDATE SET granted = excluded.granted, granted_at = excluded.granted_at").
		ToSql()
}

func buildDeleteGrantQuery(pluginID string) (string, []any, error) {
	return psql.Delete(tableGrants).
		Where(sq.Eq{"plugin_id": pluginID}).
		ToSql()
}

func buildSelectSettingQuery(key string) (string, []any, error) {
	return psql.Select("value").
		From(tableSettings).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildUpsertSettingQuery(key string, value int) (string, []any, error) {
	return psql.Insert(tableSettings).
		Columns("name", "value").
		Values(key, strconv.Itoa(value)).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
}
