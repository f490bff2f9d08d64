package resolve

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DOIResolverURL is the public DOI resolution service.
	DOIResolverURL = "https://doi.org/"
	// HandleResolverURL is the general handle resolution service.
	HandleResolverURL = "https://hdl.handle.net/"
	// CrossRefWorksURL is the secondary registry consulted by the stricter
	// active check: the resolver redirecting is not enough, metadata must
	// exist too.
	CrossRefWorksURL = "https://api.crossref.org/works/"

	// DefaultTimeout bounds a single probe round trip. There is no
	// mid-probe cancellation; an in-flight request runs to this timeout.
	DefaultTimeout = 12 * time.Second
	// DefaultProbeInterval is the minimum spacing between resolver probes
	// across the whole process.
	DefaultProbeInterval = 20 * time.Second

	// DefaultUserAgent identifies the bot to resolver operators. The
	// fallback full fetch appends a distinguishing suffix.
	DefaultUserAgent = "refmend (https://github.com/refmend/refmend)"
)

// Per-endpoint backoff schedules for transport failures. A valid HTTP
// response, whatever its status, is never retried.
var (
	doiBackoff      = []time.Duration{2 * time.Second, 5 * time.Second, 8 * time.Second}
	handleBackoff   = []time.Duration{5 * time.Second, 8 * time.Second}
	crossrefBackoff = []time.Duration{2 * time.Second, 5 * time.Second}
)

// doiDeadPrefixes are registrant zones whose resolver entries are known to
// be permanently broken; probing them wastes a round trip and a throttle
// slot.
var doiDeadPrefixes = []string{
	"10.5860/choice.", // CHOICE review DOIs were deposited but never resolve
	"10.5555/",        // test registrant
}

// handleDeadPrefixes are defunct handle namespaces.
var handleDeadPrefixes = []string{
	"20.1000/", // documentation examples, reserved and unresolvable
}

// exceptionHosts are publisher domains whose landing pages confuse the
// fallback heuristics but whose presence proves the identifier resolved.
var exceptionHosts = []string{
	"linkinghub.elsevier.com",
	"onlinelibrary.wiley.com",
}

// Prober issues header-only probes against resolver services and classifies
// the response. Implementations must be safe to call at high volume; the
// validator relies on them for throttling, not locking.
type Prober interface {
	ProbeDOI(ctx context.Context, doi string) Outcome
	ProbeDOIMetadata(ctx context.Context, doi string) Outcome
	ProbeHandle(ctx context.Context, hdl string) (location string, o Outcome)
	ProbeJSTOR(ctx context.Context, id string) Outcome
}

// HTTPProber is the live Prober. A single shared limiter enforces the
// minimum interval between probes process-wide: a strict token bucket of
// one, so an early probe sleeps out the remainder of the interval.
type HTTPProber struct {
	head      *http.Client
	follow    *http.Client
	limiter   *rate.Limiter
	sleep     func(time.Duration)
	userAgent string
	doiBase   string
	hdlBase   string
	apiBase   string
	jstorBase string
}

// ProberOption configures an HTTPProber.
type ProberOption func(*HTTPProber)

// WithProbeInterval sets the minimum spacing between probes. Zero disables
// the throttle (tests).
func WithProbeInterval(d time.Duration) ProberOption {
	return func(p *HTTPProber) {
		if d <= 0 {
			p.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		p.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithTimeout sets the per-request timeout on both clients.
func WithTimeout(d time.Duration) ProberOption {
	return func(p *HTTPProber) {
		p.head.Timeout = d
		p.follow.Timeout = d
	}
}

// WithUserAgent overrides the probe user agent; deployments append a
// contact address per resolver etiquette.
func WithUserAgent(ua string) ProberOption {
	return func(p *HTTPProber) {
		p.userAgent = ua
	}
}

// WithBaseURLs redirects the probers at alternate endpoints (for testing).
func WithBaseURLs(doiBase, hdlBase, apiBase, jstorBase string) ProberOption {
	return func(p *HTTPProber) {
		if doiBase != "" {
			p.doiBase = doiBase
		}
		if hdlBase != "" {
			p.hdlBase = hdlBase
		}
		if apiBase != "" {
			p.apiBase = apiBase
		}
		if jstorBase != "" {
			p.jstorBase = jstorBase
		}
	}
}

// WithSleep replaces the backoff sleep (tests).
func WithSleep(f func(time.Duration)) ProberOption {
	return func(p *HTTPProber) {
		p.sleep = f
	}
}

// NewHTTPProber creates a prober with the default endpoints, timeout and
// throttle.
func NewHTTPProber(opts ...ProberOption) *HTTPProber {
	p := &HTTPProber{
		head: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Redirect chains are classified hop by hop.
				return http.ErrUseLastResponse
			},
		},
		follow:    &http.Client{Timeout: DefaultTimeout},
		limiter:   rate.NewLimiter(rate.Every(DefaultProbeInterval), 1),
		sleep:     time.Sleep,
		userAgent: DefaultUserAgent,
		doiBase:   DOIResolverURL,
		hdlBase:   HandleResolverURL,
		apiBase:   CrossRefWorksURL,
		jstorBase: "https://www.jstor.org/citation/ris/",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// escapeID percent-encodes an identifier for the resolver path, keeping the
// registrant/suffix slashes intact.
func escapeID(id string) string {
	parts := strings.Split(id, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// ProbeDOI classifies a DOI against the resolver. Dead-zone prefixes are
// short-circuited to Invalid without a probe.
func (p *HTTPProber) ProbeDOI(ctx context.Context, doi string) Outcome {
	for _, prefix := range doiDeadPrefixes {
		if strings.HasPrefix(strings.ToLower(doi), prefix) {
			return Invalid
		}
	}
	_, o := p.probeResolver(ctx, p.doiBase, doi, doiBackoff)
	return o
}

// ProbeHandle classifies a handle and, on success, returns the resolved
// target location.
func (p *HTTPProber) ProbeHandle(ctx context.Context, hdl string) (string, Outcome) {
	for _, prefix := range handleDeadPrefixes {
		if strings.HasPrefix(hdl, prefix) {
			return "", Invalid
		}
	}
	return p.probeResolver(ctx, p.hdlBase, hdl, handleBackoff)
}

// ProbeDOIMetadata asks the secondary registry whether metadata exists for
// the DOI. A 200 is confirmation; a 404 is a firm no; server trouble is
// indeterminate.
func (p *HTTPProber) ProbeDOIMetadata(ctx context.Context, doi string) Outcome {
	resp, err := p.doThrottled(ctx, p.follow, http.MethodGet, p.apiBase+escapeID(doi), crossrefBackoff)
	if err != nil {
		return Indeterminate
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusOK:
		return Valid
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return Invalid
	default:
		return Indeterminate
	}
}

// ProbeJSTOR checks whether JSTOR serves a RIS citation for the given
// stable id.
func (p *HTTPProber) ProbeJSTOR(ctx context.Context, id string) Outcome {
	resp, err := p.doThrottled(ctx, p.follow, http.MethodHead, p.jstorBase+url.PathEscape(id), crossrefBackoff)
	if err != nil {
		return Indeterminate
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return Valid
	}
	return Invalid
}

// probeResolver runs the header-only probe with retry, and falls back to a
// full fetch when the header probe cannot get through at all.
func (p *HTTPProber) probeResolver(ctx context.Context, base, id string, backoff []time.Duration) (string, Outcome) {
	target := base + escapeID(id)
	resp, err := p.doThrottled(ctx, p.head, http.MethodHead, target, backoff)
	if err != nil {
		return p.fallbackFetch(ctx, target)
	}
	defer resp.Body.Close()
	return p.classifyResolverResponse(ctx, resp)
}

// doThrottled waits out the probe interval, then issues the request,
// retrying transport failures on the endpoint's backoff schedule. A
// received HTTP response, whatever the status, ends the retries.
func (p *HTTPProber) doThrottled(ctx context.Context, client *http.Client, method, target string, backoff []time.Duration) (*http.Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	var lastErr error
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, target, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", p.userAgent)
		resp, err := client.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt >= len(backoff) || ctx.Err() != nil {
			return nil, lastErr
		}
		p.sleep(backoff[attempt])
	}
}

// classifyResolverResponse maps the resolver's answer to an outcome:
// 404 is dead; 302 is a live redirect to the work; 301 needs one more hop,
// and a second 301 one more still, trusting only a 200 at the end; a 200 at
// the resolver itself means nothing resolved.
func (p *HTTPProber) classifyResolverResponse(ctx context.Context, resp *http.Response) (string, Outcome) {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return "", Invalid
	case http.StatusFound, http.StatusSeeOther:
		loc := resp.Header.Get("Location")
		if loc == "" {
			return "", Invalid
		}
		return loc, Valid
	case http.StatusMovedPermanently:
		loc := resp.Header.Get("Location")
		if loc == "" {
			return "", Invalid
		}
		hop, err := p.headOnce(ctx, loc)
		if err != nil {
			return "", Indeterminate
		}
		defer hop.Body.Close()
		switch hop.StatusCode {
		case http.StatusFound, http.StatusSeeOther:
			return loc, Valid
		case http.StatusMovedPermanently:
			loc2 := hop.Header.Get("Location")
			if loc2 == "" {
				return "", Invalid
			}
			final, err := p.headOnce(ctx, loc2)
			if err != nil {
				return "", Indeterminate
			}
			defer final.Body.Close()
			if final.StatusCode == http.StatusOK {
				return loc2, Valid
			}
			return "", Invalid
		case http.StatusOK:
			return loc, Valid
		default:
			return "", Invalid
		}
	case http.StatusOK:
		return "", Invalid
	default:
		return "", Invalid
	}
}

// headOnce issues a single unretried HEAD, used for redirect-chain hops
// that are already inside one throttle slot.
func (p *HTTPProber) headOnce(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)
	return p.head.Do(req)
}

// fallbackFetch is the last resort when the header-only method fails
// entirely: a full request with a distinguishing user agent, validity
// inferred from where the redirects ended up.
func (p *HTTPProber) fallbackFetch(ctx context.Context, target string) (string, Outcome) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", Indeterminate
	}
	req.Header.Set("User-Agent", p.userAgent+" fallback")
	resp, err := p.follow.Do(req)
	if err != nil {
		return "", Indeterminate
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", Invalid
	}
	startHost := hostOf(target)
	finalURL := resp.Request.URL
	if finalURL != nil && finalURL.Host != "" && finalURL.Host != startHost {
		return finalURL.String(), Valid
	}
	for _, h := range exceptionHosts {
		if finalURL != nil && finalURL.Host == h {
			return finalURL.String(), Valid
		}
	}
	if resp.StatusCode < 400 && (resp.Header.Get("Location") != "" || resp.Header.Get("Content-Type") != "") {
		// Still on the resolver host with a real payload: ambiguous.
		return "", Indeterminate
	}
	return "", Indeterminate
}

func hostOf(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	return u.Host
}
