package index

// Config holds configuration for the catalog index providers.
type Config struct {
	// PacksDir is the directory scanned for locally installed asset packs.
	// Every subdirectory containing an index file becomes a local provider.
	PacksDir string `mapstructure:"packs_dir" default:"./packs"`
	// IndexFile is the name of the index file inside each pack directory.
	IndexFile string `mapstructure:"index_file" default:"index.json"`
	// CacheDir is where remote providers materialize downloaded files.
	CacheDir string `mapstructure:"cache_dir" default:"./cache"`
	// RemoteIndexObject is the object name of a remote index in the storage
	// bucket. Empty disables the remote provider.
	RemoteIndexObject string `mapstructure:"remote_index_object" default:""`
	// RemotePrefix is the file ID prefix of the remote provider.
	RemotePrefix string `mapstructure:"remote_prefix" default:"/remote"`
	// DatabasePrefix is the file ID prefix of the database provider.
	DatabasePrefix string `mapstructure:"database_prefix" default:"/db"`
	// QueryCacheSize bounds the query result cache.
	QueryCacheSize int `mapstructure:"query_cache_size" default:"128"`
}
