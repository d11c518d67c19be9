package prefs

import (
	"testing"
	"time"

	pickle "github.com/kisielk/og-rek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGlobalProfile(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	gp, err := DefaultGlobalProfile("User 1", now)
	require.NoError(t, err)

	assert.Equal(t, int64(1_700_000_000), gp.Created)
	assert.Equal(t, "en_US", gp.DefaultLang)
	assert.False(t, gp.FirstRun)
	assert.Equal(t, "User 1", gp.LastLoadedProfileName)
	assert.True(t, gp.Updates)
	assert.False(t, gp.SuppressUpdate)
	assert.GreaterOrEqual(t, gp.ID, int64(1_000_000_000_000_000_000), "id must be 19 digits")

	rec := gp.Record()
	assert.Len(t, rec, 10)
	assert.Equal(t, false, rec["firstRun"])
	assert.Equal(t, int64(0), rec["lastMsg"])
	assert.Equal(t, int64(250204), rec["last_run_version"])
	assert.Equal(t, int64(0), rec["ver"])
}

func TestDefaultGlobalProfile_RandomID(t *testing.T) {
	now := time.Now()
	a, err := DefaultGlobalProfile("User 1", now)
	require.NoError(t, err)
	b, err := DefaultGlobalProfile("User 1", now)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDefaultUserProfile(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rec := DefaultUserProfile(now).Record()

	assert.Len(t, rec, 13)
	assert.Equal(t, pickle.None{}, rec["mainWindowGeom"])
	assert.Equal(t, pickle.None{}, rec["mainWindowState"])
	assert.Equal(t, pickle.None{}, rec["syncKey"])
	assert.Equal(t, int64(50), rec["numBackups"])
	assert.Equal(t, int64(1_700_000_000), rec["lastOptimize"])
	assert.Equal(t, []any{}, rec["searchHistory"])
	assert.Equal(t, true, rec["syncMedia"])
	assert.Equal(t, true, rec["autoSync"])
	assert.Equal(t, false, rec["allowHTML"])
	assert.Equal(t, int64(1), rec["importMode"])
	assert.Equal(t, "#00f", rec["lastColour"])
	assert.Equal(t, true, rec["stripHTML"])
	assert.Equal(t, false, rec["deleteMedia"])
}

func TestNormalizeGlobal(t *testing.T) {
	rec := Record{
		"created":     int64(123456),
		"firstRun":    true,
		"defaultLang": "de_DE",
		"customField": "kept",
	}

	NormalizeGlobal(rec, "Work")

	assert.Equal(t, false, rec["firstRun"])
	assert.Equal(t, "en_US", rec["defaultLang"])
	assert.Equal(t, "Work", rec["last_loaded_profile_name"])
	// Non-critical fields are preserved verbatim.
	assert.Equal(t, int64(123456), rec["created"])
	assert.Equal(t, "kept", rec["customField"])
}

func TestApplyCredentials(t *testing.T) {
	rec := DefaultUserProfile(time.Now()).Record()
	rec["autoSync"] = false
	rec["syncMedia"] = false

	ApplyCredentials(rec, "user@example.com", "abc123")

	assert.Equal(t, "abc123", rec["syncKey"])
	assert.Equal(t, "user@example.com", rec["syncUser"])
	assert.Equal(t, true, rec["autoSync"])
	assert.Equal(t, true, rec["syncMedia"])
}

func TestSyncKey(t *testing.T) {
	rec := DefaultUserProfile(time.Now()).Record()

	_, ok := SyncKey(rec)
	assert.False(t, ok, "default profile has no sync key")

	ApplyCredentials(rec, "user@example.com", "abc123")
	key, ok := SyncKey(rec)
	assert.True(t, ok)
	assert.Equal(t, "abc123", key)

	_, ok = SyncKey(Record{})
	assert.False(t, ok, "missing key reports absent")
}
