package api

// Limiter keys are per-resource wherever a resource id exists, so concurrent
// work on different pages or blocks proceeds in parallel while calls hitting
// the same resource stay serialized under one budget. Operations without a
// target resource (search) share one operation-class key.

func searchKey() string { return "search" }

func pageKey(id string) string { return "page:" + id }

// Creations have no resource id yet; they share one class-wide key.
func createPageKey() string { return "page:create" }

func databaseKey(id string) string { return "database:" + id }

func blockKey(id string) string { return "block:" + id }

func blockChildrenKey(id string) string { return "block:" + id + ":children" }
