// ABOUTME: Folder image enumeration with a cached list of thumbnail URLs.
// ABOUTME: Folder URLs are reduced to ids, which also form the cache key.
package gdrive

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/harperreed/gymtrack/internal/cache"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "gdrive:"

var folderIDPattern = regexp.MustCompile(`folders/([a-zA-Z0-9-_]+)`)

// ExtractFolderID returns the folder id of a Drive folder URL, or "" if the
// URL has no folders/<id> segment.
func ExtractFolderID(folderURL string) string {
	m := folderIDPattern.FindStringSubmatch(folderURL)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// ThumbnailURL returns a 500px-wide thumbnail URL for a Drive file.
func ThumbnailURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w500", fileID)
}

// Client enumerates folder images through a FileLister and the cache.
type Client struct {
	lister FileLister
	cache  *cache.Cache
}

// NewClient creates a Client. A nil cache disables caching.
func NewClient(lister FileLister, c *cache.Cache) *Client {
	return &Client{lister: lister, cache: c}
}

// CacheKey returns the cache key for a set of folder URLs.
func CacheKey(folderURLs []string) string {
	ids := make([]string, 0, len(folderURLs))
	for _, u := range folderURLs {
		ids = append(ids, ExtractFolderID(u))
	}
	return cacheKeyPrefix + strings.Join(ids, ",")
}

// FolderImages returns thumbnail URLs for every image in the given folders,
// in folder order. Fresh cached results are returned without calling Drive.
// Lister errors are returned and nothing is cached.
func (c *Client) FolderImages(ctx context.Context, folderURLs []string) ([]string, error) {
	key := CacheKey(folderURLs)

	var urls []string
	if c.cache.Get(ctx, key, &urls) {
		log.Debug().Str("key", key).Int("count", len(urls)).Msg("Using cached folder images")
		return urls, nil
	}

	urls = []string{}
	for _, folderURL := range folderURLs {
		folderID := ExtractFolderID(folderURL)
		if folderID == "" {
			log.Warn().Str("url", folderURL).Msg("No folder id in Drive URL")
			continue
		}

		files, err := c.lister.ListImages(ctx, folderID)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			urls = append(urls, ThumbnailURL(f.ID))
		}
	}

	c.cache.Set(ctx, key, urls)
	return urls, nil
}
