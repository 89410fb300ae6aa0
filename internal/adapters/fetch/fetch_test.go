package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kassel/seatheat/internal/adapters/fetch"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFetch(t *testing.T) {
	Convey("Given a diagram server", t, func() {
		const doc = `<svg width="100"><rect x="0" y="0" width="16" height="16" fill="#cccccc"/></svg>`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/venue.svg":
				w.Header().Set("Content-Type", "image/svg+xml")
				_, _ = w.Write([]byte(doc))
			case "/slow":
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(doc))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		f := fetch.New()
		ctx := context.Background()

		Convey("When fetching an existing diagram", func() {
			body, err := f.Fetch(ctx, srv.URL+"/venue.svg")

			Convey("Then the document body is returned", func() {
				So(err, ShouldBeNil)
				So(body, ShouldEqual, doc)
			})
		})

		Convey("When the diagram is missing", func() {
			_, err := f.Fetch(ctx, srv.URL+"/missing.svg")

			Convey("Then the error carries the fetch kind", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "diagram fetch failed")
			})
		})

		Convey("When the server is slower than the timeout", func() {
			fast := fetch.New(fetch.WithTimeout(20 * time.Millisecond))
			_, err := fast.Fetch(ctx, srv.URL+"/slow")

			Convey("Then the fetch is cancelled", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the URL is unreachable", func() {
			_, err := f.Fetch(ctx, "http://127.0.0.1:1/nope.svg")

			Convey("Then the failure is surfaced, not swallowed", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
