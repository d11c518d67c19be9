// Default profile configurations and record merges. The field sets and
// default values here mirror what the Anki application writes on its own
// first run; they must be reproduced key-for-key so the application can
// unpickle them.
package prefs

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	pickle "github.com/kisielk/og-rek"
)

// Well-known record names.
const (
	// GlobalProfileName is the process-wide settings record.
	GlobalProfileName = "_global"

	// DefaultProfileName is the user profile Anki creates by default.
	DefaultProfileName = "User 1"
)

// Record keys for the _global profile.
const (
	keyCreated               = "created"
	keyDefaultLang           = "defaultLang"
	keyFirstRun              = "firstRun"
	keyID                    = "id"
	keyLastMsg               = "lastMsg"
	keyLastLoadedProfileName = "last_loaded_profile_name"
	keyLastRunVersion        = "last_run_version"
	keySuppressUpdate        = "suppressUpdate"
	keyUpdates               = "updates"
	keyVer                   = "ver"
)

// Record keys for user profiles (sync-related subset).
const (
	keySyncKey   = "syncKey"
	keySyncUser  = "syncUser"
	keyAutoSync  = "autoSync"
	keySyncMedia = "syncMedia"
)

// defaultLang is the locale tag written to _global on every run.
const defaultLang = "en_US"

// lastRunVersion is the Anki point-version marker written into new _global
// records.
const lastRunVersion = 250204

// GlobalProfile is the typed form of the _global record defaults. Explicit
// named fields give compile-time checking of the key set; Record() converts
// to the dynamically keyed form at the pickle boundary.
type GlobalProfile struct {
	Created               int64
	DefaultLang           string
	FirstRun              bool
	ID                    int64
	LastMsg               int64
	LastLoadedProfileName string
	LastRunVersion        int64
	SuppressUpdate        bool
	Updates               bool
	Ver                   int64
}

// DefaultGlobalProfile returns the _global defaults for a fresh store.
func DefaultGlobalProfile(profileName string, now time.Time) (GlobalProfile, error) {
	id, err := randomProfileID()
	if err != nil {
		return GlobalProfile{}, err
	}
	return GlobalProfile{
		Created:               now.Unix(),
		DefaultLang:           defaultLang,
		FirstRun:              false,
		ID:                    id,
		LastMsg:               0,
		LastLoadedProfileName: profileName,
		LastRunVersion:        lastRunVersion,
		SuppressUpdate:        false,
		Updates:               true,
		Ver:                   0,
	}, nil
}

// Record converts the typed defaults to the stored mapping form.
func (g GlobalProfile) Record() Record {
	return Record{
		keyCreated:               g.Created,
		keyDefaultLang:           g.DefaultLang,
		keyFirstRun:              g.FirstRun,
		keyID:                    g.ID,
		keyLastMsg:               g.LastMsg,
		keyLastLoadedProfileName: g.LastLoadedProfileName,
		keyLastRunVersion:        g.LastRunVersion,
		keySuppressUpdate:        g.SuppressUpdate,
		keyUpdates:               g.Updates,
		keyVer:                   g.Ver,
	}
}

// UserProfile is the typed form of the user record defaults.
type UserProfile struct {
	NumBackups   int64
	LastOptimize int64
	SyncMedia    bool
	AutoSync     bool
	AllowHTML    bool
	ImportMode   int64
	LastColour   string
	StripHTML    bool
	DeleteMedia  bool
}

// DefaultUserProfile returns the user record defaults for a fresh store.
func DefaultUserProfile(now time.Time) UserProfile {
	return UserProfile{
		NumBackups:   50,
		LastOptimize: now.Unix(),
		SyncMedia:    true,
		AutoSync:     true,
		AllowHTML:    false,
		ImportMode:   1,
		LastColour:   "#00f",
		StripHTML:    true,
		DeleteMedia:  false,
	}
}

// Record converts the typed defaults to the stored mapping form. Window
// geometry and the sync key start as Python None; the search history starts
// as an empty list.
func (u UserProfile) Record() Record {
	return Record{
		"mainWindowGeom":  pickle.None{},
		"mainWindowState": pickle.None{},
		"numBackups":      u.NumBackups,
		"lastOptimize":    u.LastOptimize,
		"searchHistory":   []any{},
		keySyncKey:        pickle.None{},
		keySyncMedia:      u.SyncMedia,
		keyAutoSync:       u.AutoSync,
		"allowHTML":       u.AllowHTML,
		"importMode":      u.ImportMode,
		"lastColour":      u.LastColour,
		"stripHTML":       u.StripHTML,
		"deleteMedia":     u.DeleteMedia,
	}
}

// NormalizeGlobal applies the invariants that must hold on every run,
// whether the record is newly created or pre-existing: the first-run wizard
// is disabled and the locale and last-active-profile markers are set. All
// other keys are left untouched.
func NormalizeGlobal(rec Record, profileName string) {
	rec[keyFirstRun] = false
	rec[keyDefaultLang] = defaultLang
	rec[keyLastLoadedProfileName] = profileName
}

// ApplyCredentials injects the sync token and username into a user record
// and enables automatic sync. Called only after a successful credential
// exchange.
func ApplyCredentials(rec Record, username, syncKey string) {
	rec[keySyncKey] = syncKey
	rec[keySyncUser] = username
	rec[keyAutoSync] = true
	rec[keySyncMedia] = true
}

// SyncKey returns the stored sync token, if any. Python None and a missing
// key both report absent.
func SyncKey(rec Record) (string, bool) {
	v, ok := rec[keySyncKey]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// randomProfileID generates the random unique identifier stored in _global.
// Anki treats it as an opaque int; 19 decimal digits keeps it in the range
// the application generates for itself.
func randomProfileID() (int64, error) {
	const (
		lo   = int64(1_000_000_000_000_000_000)
		span = int64(8_000_000_000_000_000_000)
	)
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, fmt.Errorf("generating profile id: %w", err)
	}
	return lo + n.Int64(), nil
}
