package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DashboardCountsKey returns the cache key for the admin dashboard entity counts.
func (r *CacheKeyStruct) DashboardCountsKey() string {
	return "dashboard:counts"
}

var CacheKey = NewCacheKeyStruct()
