package config

import (
	"bufio"
	"net/url"
	"os"
	"strings"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

// LoadSites reads path as one absolute URL per line. Blank lines are
// skipped silently; lines that fail to parse as an absolute http(s) URL
// are returned as warnings rather than aborting the read. Zero valid URLs
// is the caller's job to treat as startup-fatal.
func LoadSites(path string) (sites []string, warnings []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errx.Wrap(ErrReadSiteList, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		u, parseErr := url.Parse(line)
		if parseErr != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			warnings = append(warnings, line)
			continue
		}
		sites = append(sites, line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, nil, errx.Wrap(ErrReadSiteList, scanErr)
	}
	if len(sites) == 0 {
		return nil, warnings, ErrEmptySiteList
	}
	return sites, warnings, nil
}
