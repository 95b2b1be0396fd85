package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRenderComponentGomponent(t *testing.T) {
	r := NewUniversalRenderer()

	node := html.Div(html.ID("probe"), gomponents.Text("hello"))
	out, err := r.RenderComponent(context.Background(), node)
	require.NoError(t, err)
	assert.Contains(t, string(out), `id="probe"`)
	assert.Contains(t, string(out), "hello")
}

func TestRenderComponentTempl(t *testing.T) {
	r := NewUniversalRenderer()

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<span>templ</span>")
		return err
	})
	out, err := r.RenderComponent(context.Background(), component)
	require.NoError(t, err)
	assert.Equal(t, "<span>templ</span>", string(out))
}

func TestRenderComponentRejectsUnknownTypes(t *testing.T) {
	r := NewUniversalRenderer()

	_, err := r.RenderComponent(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported component type")
}

func TestEchoRendererSetsContentType(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", html.P(gomponents.Text("page")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "<p>page</p>")
}
