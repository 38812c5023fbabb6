package tweet

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/vincent-petithory/dataurl"
)

var _ = Describe("coerceText", func() {
	It("passes a plain string through", func() {
		text, err := coerceText("a tweet")
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(Equal("a tweet"))
	})

	It("joins streamed output chunks", func() {
		text, err := coerceText([]any{"a ", "tweet ", "in ", "chunks"})
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(Equal("a tweet in chunks"))
	})

	It("errors on a non-string chunk", func() {
		_, err := coerceText([]any{"a ", 42})
		Expect(err).To(MatchError(ContainSubstring("unexpected output chunk")))
	})

	It("errors on nil output", func() {
		_, err := coerceText(nil)
		Expect(err).To(MatchError(ContainSubstring("no output")))
	})

	It("errors on an unexpected type", func() {
		_, err := coerceText(map[string]any{"output": "x"})
		Expect(err).To(MatchError(ContainSubstring("unexpected output type")))
	})
})

var _ = Describe("firstImageOutput", func() {
	It("passes a plain URL string through", func() {
		u, err := firstImageOutput("https://example.com/out.png")
		Expect(err).ToNot(HaveOccurred())
		Expect(u).To(Equal("https://example.com/out.png"))
	})

	It("takes the first non-empty URL from a list", func() {
		u, err := firstImageOutput([]any{"", "https://example.com/a.webp", "https://example.com/b.webp"})
		Expect(err).ToNot(HaveOccurred())
		Expect(u).To(Equal("https://example.com/a.webp"))
	})

	It("errors on an empty list", func() {
		_, err := firstImageOutput([]any{})
		Expect(err).To(MatchError(ContainSubstring("no image URL")))
	})

	It("errors on an empty string", func() {
		_, err := firstImageOutput("")
		Expect(err).To(MatchError(ContainSubstring("empty URL")))
	})

	It("errors on nil output", func() {
		_, err := firstImageOutput(nil)
		Expect(err).To(MatchError(ContainSubstring("no output")))
	})
})

var _ = Describe("resolveImage", func() {
	var m *ReplicateModel

	BeforeEach(func() {
		m = &ReplicateModel{
			logger: slog.New(slog.NewTextHandler(GinkgoWriter, nil)),
			http:   http.DefaultClient,
		}
	})

	It("decodes an inline data URI and takes the extension from its media type", func() {
		uri := dataurl.New([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png").String()

		img, err := m.resolveImage(context.Background(), uri)
		Expect(err).ToNot(HaveOccurred())
		Expect(img.Data).To(Equal([]byte{0x89, 0x50, 0x4e, 0x47}))
		Expect(img.Ext).To(Equal(".png"))
	})

	It("errors on a malformed data URI", func() {
		_, err := m.resolveImage(context.Background(), "data:nonsense")
		Expect(err).To(MatchError(ContainSubstring("decoding data URI")))
	})

	It("rejects a string that is not an http(s) URL", func() {
		_, err := m.resolveImage(context.Background(), "just some text")
		Expect(err).To(MatchError(ContainSubstring("not an image URL")))
	})

	It("rejects a URL with an unsupported scheme", func() {
		_, err := m.resolveImage(context.Background(), "ftp://example.com/out.png")
		Expect(err).To(MatchError(ContainSubstring("not an image URL")))
	})
})

var _ = Describe("imageExt", func() {
	It("takes the extension from the URL path", func() {
		Expect(imageExt("https://example.com/path/out.webp?expires=1")).To(Equal(".webp"))
	})

	It("falls back to .jpg when the path has no extension", func() {
		Expect(imageExt("https://example.com/output")).To(Equal(".jpg"))
	})
})

var _ = Describe("fetchImage", func() {
	var (
		server *httptest.Server
		m      *ReplicateModel
		status int
		body   []byte
	)

	BeforeEach(func() {
		status = http.StatusOK
		body = []byte{0xff, 0xd8, 0xff, 0xe0}
		server = httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
			rw.WriteHeader(status)
			_, _ = rw.Write(body)
		}))
		m = &ReplicateModel{
			logger: slog.New(slog.NewTextHandler(GinkgoWriter, nil)),
			http:   server.Client(),
		}
	})

	AfterEach(func() {
		server.Close()
	})

	It("downloads the image bytes and keeps the URL's extension", func() {
		img, err := m.fetchImage(context.Background(), server.URL+"/out.png")
		Expect(err).ToNot(HaveOccurred())
		Expect(img.Data).To(Equal([]byte{0xff, 0xd8, 0xff, 0xe0}))
		Expect(img.Ext).To(Equal(".png"))
	})

	Context("when the download is not a success", func() {
		BeforeEach(func() {
			status = http.StatusNotFound
		})
		It("errors with the response status", func() {
			_, err := m.fetchImage(context.Background(), server.URL+"/out.png")
			Expect(err).To(MatchError(ContainSubstring("404")))
		})
	})
})
