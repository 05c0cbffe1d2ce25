package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateRecognizer is returned when a recognizer equal to an existing one is added to a registry.
	ErrDuplicateRecognizer = zerr.New("recognizer already registered")

	// ErrInvalidRecognizer is returned when a recognizer definition is incomplete or unsafe.
	ErrInvalidRecognizer = zerr.New("invalid recognizer")

	// ErrReservedRecognizerName is returned when a recognizer uses a reserved name (e.g., "all").
	ErrReservedRecognizerName = zerr.New("recognizer name 'all' is reserved")

	// ErrNoRecognizers is returned when filtering leaves no recognizer to scan with.
	ErrNoRecognizers = zerr.New("no recognizers selected")

	// ErrWalkFailed is returned when the directory traversal cannot continue.
	ErrWalkFailed = zerr.New("failed to walk directory tree")

	// ErrSizeFailed is returned when the size of a path cannot be computed.
	ErrSizeFailed = zerr.New("failed to compute size")

	// ErrFailedToGetRoot is returned when the scan root cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of scan root")

	// ErrCacheMissing is returned when no cache entry exists for a root.
	ErrCacheMissing = zerr.New("cache entry not found")

	// ErrCacheExpired is returned when the cache entry is older than the allowed TTL.
	ErrCacheExpired = zerr.New("cache entry expired")

	// ErrCacheIOFailure is returned when the cache entry cannot be read or written.
	ErrCacheIOFailure = zerr.New("cache i/o failure")

	// ErrCacheSerializationFailure is returned when the cache entry cannot be encoded or decoded.
	ErrCacheSerializationFailure = zerr.New("cache serialization failure")

	// ErrNoUsableCache is returned when clean is requested without a fresh listing.
	ErrNoUsableCache = zerr.New("no usable scan results, run 'wsg list' first")

	// ErrInvalidIndex is returned when an index argument is neither 'all' nor a non-negative integer.
	ErrInvalidIndex = zerr.New("invalid index, expected 'all' or a non-negative integer")

	// ErrUnknownIndex is returned when a selected index is not part of the cached results.
	ErrUnknownIndex = zerr.New("unknown index")

	// ErrNoIndicesSpecified is returned when clean is called without any index.
	ErrNoIndicesSpecified = zerr.New("no indices specified")

	// ErrPartialDeletion is returned when at least one path could not be deleted.
	ErrPartialDeletion = zerr.New("some paths could not be deleted")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrVolumeUsageFailed is returned when the usage of the volume holding a path cannot be read.
	ErrVolumeUsageFailed = zerr.New("failed to read volume usage")

	// ErrPromptFailed is returned when the confirmation prompt cannot be shown.
	ErrPromptFailed = zerr.New("failed to read confirmation")
)
