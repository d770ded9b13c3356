// Package browser exports browser session cookies for yt-dlp.
package browser

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"tubaudio/internal/domain/consts"
	"tubaudio/internal/utils/logging"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

const netscapeHeader = "# Netscape HTTP Cookie File\n"

// CookieExporter writes cookies from a local browser into a Netscape cookie file.
type CookieExporter struct {
	Browser string
	stores  func() []kooky.CookieStore
}

// NewCookieExporter returns an exporter reading from the named browser (e.g. "firefox").
func NewCookieExporter(browserName string) *CookieExporter {
	return &CookieExporter{
		Browser: browserName,
		stores:  kooky.FindAllCookieStores,
	}
}

// Export writes the browser's cookies for rawURL's site to dest and returns how many were written.
func (e *CookieExporter) Export(rawURL, dest string) (int, error) {
	domain, err := extractBaseDomain(rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to extract base domain: %w", err)
	}

	var cookies []*http.Cookie
	for _, store := range e.stores() {
		if !strings.EqualFold(store.Browser(), e.Browser) {
			store.Close()
			continue
		}

		logging.D(2, "Attempting to read cookies from %s (%s)", store.Browser(), store.FilePath())
		kc, err := store.ReadCookies(kooky.Valid, kooky.DomainHasSuffix(domain))
		store.Close()
		if err != nil {
			logging.D(2, "Failed to read cookies from %s: %v", store.Browser(), err)
			continue
		}
		cookies = append(cookies, convertToHTTPCookies(kc)...)
	}

	if len(cookies) == 0 {
		logging.I("No %s cookies found for %q, proceeding without cookies", e.Browser, domain)
		return 0, nil
	}

	f, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, consts.PermsCookieFile)
	if err != nil {
		return 0, fmt.Errorf("failed to create cookie file %q: %w", dest, err)
	}
	if err := WriteNetscape(f, cookies); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close cookie file %q: %w", dest, err)
	}

	logging.I("Exported %d %s cookies for %q to %s", len(cookies), e.Browser, domain, dest)
	return len(cookies), nil
}

// WriteNetscape writes cookies in the Netscape cookie file format yt-dlp reads.
func WriteNetscape(w io.Writer, cookies []*http.Cookie) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(netscapeHeader); err != nil {
		return fmt.Errorf("error writing cookie header: %w", err)
	}

	for _, c := range cookies {
		domain := c.Domain
		includeSubdomains := "FALSE"
		if strings.HasPrefix(domain, ".") {
			includeSubdomains = "TRUE"
		}

		path := c.Path
		if path == "" {
			path = "/"
		}

		var expires int64
		if !c.Expires.IsZero() {
			expires = c.Expires.Unix()
		}

		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, includeSubdomains, path, netscapeBool(c.Secure), expires, c.Name, c.Value); err != nil {
			return fmt.Errorf("error writing cookie %q: %w", c.Name, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error flushing writer: %w", err)
	}
	return nil
}

func netscapeBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		}
	}
	return httpCookies
}

// extractBaseDomain parses a URL and extracts its registrable domain (e.g. "youtube.com").
func extractBaseDomain(urlString string) (string, error) {
	parsedURL, err := url.Parse(urlString)
	if err != nil {
		return "", err
	}

	host := parsedURL.Hostname()
	if host == "" {
		return "", fmt.Errorf("no host in URL %q", urlString)
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, nil
	}
	return domain, nil
}
