package resolve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestProber points every endpoint at the given server with the
// throttle and backoff sleeps disabled.
func newTestProber(srv *httptest.Server) *HTTPProber {
	base := srv.URL + "/"
	return NewHTTPProber(
		WithProbeInterval(0),
		WithSleep(func(time.Duration) {}),
		WithBaseURLs(base+"doi/", base+"hdl/", base+"api/", base+"jstor/"),
		WithTimeout(2*time.Second),
	)
}

func TestProbeDOIClassification(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/doi/10.1000/alive", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://publisher.example/article")
		w.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/doi/10.1000/dead", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/doi/10.1000/norecord", func(w http.ResponseWriter, r *http.Request) {
		// 200 at the resolver itself means nothing resolved.
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	p := newTestProber(srv)

	tests := []struct {
		doi  string
		want Outcome
	}{
		{"10.1000/alive", Valid},
		{"10.1000/dead", Invalid},
		{"10.1000/norecord", Invalid},
	}
	for _, tt := range tests {
		if got := p.ProbeDOI(ctx, tt.doi); got != tt.want {
			t.Errorf("ProbeDOI(%q) = %v, want %v", tt.doi, got, tt.want)
		}
	}
}

func TestProbeDOIDeadZones(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("dead-zone DOI reached the network: %s", r.URL.Path)
	}))
	defer srv.Close()
	p := newTestProber(srv)

	for _, doi := range []string{"10.5860/choice.12345", "10.5555/anything", "10.5860/CHOICE.12345"} {
		if got := p.ProbeDOI(ctx, doi); got != Invalid {
			t.Errorf("ProbeDOI(%q) = %v, want Invalid", doi, got)
		}
	}
}

func TestProbeDOIFollowsPermanentRedirectChain(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/doi/10.1000/moved", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", srv.URL+"/hop1")
		w.WriteHeader(http.StatusMovedPermanently)
	})
	mux.HandleFunc("/hop1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", srv.URL+"/hop2")
		w.WriteHeader(http.StatusMovedPermanently)
	})
	mux.HandleFunc("/hop2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/doi/10.1000/movedgone", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", srv.URL+"/gone")
		w.WriteHeader(http.StatusMovedPermanently)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	p := newTestProber(srv)
	if got := p.ProbeDOI(ctx, "10.1000/moved"); got != Valid {
		t.Errorf("two-hop permanent redirect to 200 = %v, want Valid", got)
	}
	if got := p.ProbeDOI(ctx, "10.1000/movedgone"); got != Invalid {
		t.Errorf("permanent redirect to 404 = %v, want Invalid", got)
	}
}

func TestProbeHandle(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/hdl/20.500.11850/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://repository.example/record/1")
		w.WriteHeader(http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	p := newTestProber(srv)

	loc, o := p.ProbeHandle(ctx, "20.500.11850/1")
	if o != Valid || loc != "https://repository.example/record/1" {
		t.Errorf("ProbeHandle = (%q, %v), want location and Valid", loc, o)
	}

	// The documentation namespace never resolves.
	if _, o := p.ProbeHandle(ctx, "20.1000/example"); o != Invalid {
		t.Errorf("dead namespace = %v, want Invalid", o)
	}
}

func TestProbeDOIMetadata(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/10.1000/known", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/10.1000/unknown", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/api/10.1000/flaky", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	p := newTestProber(srv)

	if got := p.ProbeDOIMetadata(ctx, "10.1000/known"); got != Valid {
		t.Errorf("known = %v, want Valid", got)
	}
	if got := p.ProbeDOIMetadata(ctx, "10.1000/unknown"); got != Invalid {
		t.Errorf("unknown = %v, want Invalid", got)
	}
	if got := p.ProbeDOIMetadata(ctx, "10.1000/flaky"); got != Indeterminate {
		t.Errorf("server error = %v, want Indeterminate", got)
	}
}

func TestProbeJSTOR(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/jstor/1969529", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	p := newTestProber(srv)

	if got := p.ProbeJSTOR(ctx, "1969529"); got != Valid {
		t.Errorf("served citation = %v, want Valid", got)
	}
	if got := p.ProbeJSTOR(ctx, "0000000"); got != Invalid {
		t.Errorf("missing citation = %v, want Invalid", got)
	}
}

func TestDoThrottledRetriesTransportFailures(t *testing.T) {
	ctx := context.Background()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusFound)
	}))
	p := newTestProber(srv)

	// Point at a closed server: every attempt fails at the transport.
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	var slept int
	p.sleep = func(time.Duration) { slept++ }
	_, err := p.doThrottled(ctx, p.head, http.MethodHead, closedURL, doiBackoff)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if slept != len(doiBackoff) {
		t.Errorf("slept %d times, want %d (one per backoff step)", slept, len(doiBackoff))
	}

	// A received response, whatever its status, ends the retries.
	slept = 0
	resp, err := p.doThrottled(ctx, p.head, http.MethodHead, srv.URL, doiBackoff)
	if err != nil {
		t.Fatalf("doThrottled: %v", err)
	}
	resp.Body.Close()
	if hits != 1 || slept != 0 {
		t.Errorf("hits = %d, slept = %d; want 1 and 0", hits, slept)
	}
	srv.Close()
}

func TestEscapeID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"10.1000/182", "10.1000/182"},
		{"10.1002/1097-0142(200101)91:2<394::AID-CNCR1013>3.0.CO;2-9",
			"10.1002/1097-0142%28200101%2991:2%3C394::AID-CNCR1013%3E3.0.CO%3B2-9"},
		{"20.500.11850/365038", "20.500.11850/365038"},
	}
	for _, tt := range tests {
		if got := escapeID(tt.in); got != tt.want {
			t.Errorf("escapeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
