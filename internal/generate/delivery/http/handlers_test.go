package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aibridge-srv/config"
	"aibridge-srv/internal/generate"
	"aibridge-srv/pkg/genesys"
	"aibridge-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, ...any)          {}
func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, ...any)           {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, ...any)           {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, ...any)          {}
func (nopLogger) Errorf(context.Context, string, ...any) {}
func (nopLogger) Fatal(context.Context, ...any)          {}
func (nopLogger) Fatalf(context.Context, string, ...any) {}

var _ log.Logger = nopLogger{}

// fakeUseCase records the call and answers from a script.
type fakeUseCase struct {
	calls []useCaseCall
	out   generate.Output
	err   error
}

type useCaseCall struct {
	creds genesys.Credentials
	input generate.Input
}

func (f *fakeUseCase) Generate(_ context.Context, creds genesys.Credentials, input generate.Input) (generate.Output, error) {
	f.calls = append(f.calls, useCaseCall{creds: creds, input: input})
	return f.out, f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Gemini.SupportedModels = []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.0-flash"}
	return cfg
}

func newTestHandler(uc *fakeUseCase, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handler{l: nopLogger{}, uc: uc, cfg: cfg}
	router := gin.New()
	router.POST("/api/v1/generate", h.Generate)
	return router
}

func postGenerate(t *testing.T, router *gin.Engine, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w.Code, resp
}

func validBody() string {
	return `{
		"provider": "google",
		"model": "gemini-2.5-flash",
		"user_message": "summarize the attached file",
		"processLastConversationFile": false
	}`
}

func TestGenerateSuccess(t *testing.T) {
	t.Run("returns the normalized generation result", func(t *testing.T) {
		uc := &fakeUseCase{out: generate.Output{
			GeminiResponse: json.RawMessage(`{"candidates":[]}`),
			TextOutput:     "the summary",
			FinishReason:   "STOP",
			Usage:          json.RawMessage(`{"totalTokenCount":12}`),
		}}
		router := newTestHandler(uc, testConfig())

		code, resp := postGenerate(t, router, validBody(), nil)
		if code != http.StatusOK {
			t.Fatalf("HTTP status = %d, want 200", code)
		}
		if resp["status"] != float64(200) {
			t.Errorf("status = %v, want 200", resp["status"])
		}
		if resp["textOutput"] != "the summary" {
			t.Errorf("textOutput = %v, want the generated text", resp["textOutput"])
		}
		if resp["finishReason"] != "STOP" {
			t.Errorf("finishReason = %v, want STOP", resp["finishReason"])
		}
		usage, ok := resp["usage"].(map[string]any)
		if !ok || usage["totalTokenCount"] != float64(12) {
			t.Errorf("usage = %v, want the usage metadata", resp["usage"])
		}
	})

	t.Run("applies defaults for temperature and max_tokens", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newTestHandler(uc, testConfig())

		postGenerate(t, router, validBody(), nil)
		if len(uc.calls) != 1 {
			t.Fatalf("usecase calls = %d, want 1", len(uc.calls))
		}
		input := uc.calls[0].input
		if input.Temperature != generate.DefaultTemperature {
			t.Errorf("temperature = %v, want %v", input.Temperature, generate.DefaultTemperature)
		}
		if input.MaxTokens != generate.DefaultMaxTokens {
			t.Errorf("max_tokens = %d, want %d", input.MaxTokens, generate.DefaultMaxTokens)
		}
	})

	t.Run("explicit knobs override the defaults", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newTestHandler(uc, testConfig())

		body := `{
			"provider": "google",
			"model": "gemini-2.5-pro",
			"user_message": "hi",
			"processLastConversationFile": false,
			"temperature": 0.9,
			"max_tokens": 64,
			"system_message": "be terse"
		}`
		postGenerate(t, router, body, nil)
		input := uc.calls[0].input
		if input.Temperature != 0.9 {
			t.Errorf("temperature = %v, want 0.9", input.Temperature)
		}
		if input.MaxTokens != 64 {
			t.Errorf("max_tokens = %d, want 64", input.MaxTokens)
		}
		if input.SystemMessage != "be terse" {
			t.Errorf("system_message = %q, want be terse", input.SystemMessage)
		}
	})

	t.Run("unrecognized fields are echoed back", func(t *testing.T) {
		uc := &fakeUseCase{out: generate.Output{GeminiResponse: json.RawMessage(`{}`)}}
		router := newTestHandler(uc, testConfig())

		body := `{
			"provider": "google",
			"model": "gemini-2.5-flash",
			"user_message": "hi",
			"processLastConversationFile": false,
			"correlationId": "corr-42",
			"invocationContext": {"flow": "triage"}
		}`
		_, resp := postGenerate(t, router, body, nil)
		if resp["correlationId"] != "corr-42" {
			t.Errorf("correlationId = %v, want corr-42", resp["correlationId"])
		}
		invocation, ok := resp["invocationContext"].(map[string]any)
		if !ok || invocation["flow"] != "triage" {
			t.Errorf("invocationContext = %v, want the echoed object", resp["invocationContext"])
		}
	})

	t.Run("embedded rawRequest takes precedence", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newTestHandler(uc, testConfig())

		inner := `{"provider":"google","model":"gemini-2.0-flash","user_message":"from the wrapper","processLastConversationFile":false}`
		outer := fmt.Sprintf(`{"provider":"ignored","rawRequest":%s}`, jsonQuote(inner))
		_, resp := postGenerate(t, router, outer, nil)

		if resp["status"] != float64(200) {
			t.Fatalf("status = %v, want 200 (%v)", resp["status"], resp["message"])
		}
		if len(uc.calls) != 1 {
			t.Fatalf("usecase calls = %d, want 1", len(uc.calls))
		}
		if got := uc.calls[0].input.UserMessage; got != "from the wrapper" {
			t.Errorf("user_message = %q, want the embedded payload's value", got)
		}
		if got := uc.calls[0].input.Model; got != "gemini-2.0-flash" {
			t.Errorf("model = %q, want the embedded payload's value", got)
		}
	})
}

// jsonQuote quotes s as a JSON string literal.
func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateValidation(t *testing.T) {
	expect400 := func(t *testing.T, body string, wantFragment string) {
		t.Helper()
		uc := &fakeUseCase{}
		router := newTestHandler(uc, testConfig())

		code, resp := postGenerate(t, router, body, nil)
		if code != http.StatusOK {
			t.Errorf("HTTP status = %d, want 200 (business status in the body)", code)
		}
		if resp["status"] != float64(400) {
			t.Errorf("status = %v, want 400", resp["status"])
		}
		message, _ := resp["message"].(string)
		if !strings.Contains(message, wantFragment) {
			t.Errorf("message = %q, want it to mention %q", message, wantFragment)
		}
		if len(uc.calls) != 0 {
			t.Errorf("usecase calls = %d, want 0", len(uc.calls))
		}
	}

	t.Run("malformed JSON body", func(t *testing.T) {
		expect400(t, `{not json`, "Invalid JSON payload")
	})

	t.Run("missing user_message", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","processLastConversationFile":false}`, "user_message")
	})

	t.Run("missing processLastConversationFile", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi"}`, "processLastConversationFile")
	})

	t.Run("wrong type for temperature", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":false,"temperature":"hot"}`, "temperature")
	})

	t.Run("fractional max_tokens", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":false,"max_tokens":12.5}`, "max_tokens")
	})

	t.Run("conversation processing without a conversation id", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":true}`, "conversationId")
	})

	t.Run("JSON mode without a schema", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":false,"isJsonResponse":true}`, "responseSchema")
	})

	t.Run("JSON mode with a malformed schema", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":false,"isJsonResponse":true,"responseSchema":"{\"type\":"}`, "responseSchema")
	})

	t.Run("unsupported provider", func(t *testing.T) {
		expect400(t, `{"provider":"openai","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":false}`, "provider")
	})

	t.Run("unsupported model", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-1.0-ultra","user_message":"hi","processLastConversationFile":false}`, "model")
	})

	t.Run("max_tokens above the ceiling", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":false,"max_tokens":10000}`, "max_tokens")
	})

	t.Run("max_tokens below the floor", func(t *testing.T) {
		expect400(t, `{"provider":"google","model":"gemini-2.5-flash","user_message":"hi","processLastConversationFile":false,"max_tokens":2}`, "max_tokens")
	})
}

func TestGenerateErrorMapping(t *testing.T) {
	run := func(t *testing.T, ucErr error, wantStatus int) map[string]any {
		t.Helper()
		uc := &fakeUseCase{err: ucErr}
		router := newTestHandler(uc, testConfig())

		code, resp := postGenerate(t, router, validBody(), nil)
		if code != http.StatusOK {
			t.Errorf("HTTP status = %d, want 200", code)
		}
		if resp["status"] != float64(wantStatus) {
			t.Errorf("status = %v, want %d", resp["status"], wantStatus)
		}
		return resp
	}

	t.Run("missing credentials", func(t *testing.T) {
		run(t, generate.ErrMissingGenesysCredentials, 400)
	})

	t.Run("no customer media", func(t *testing.T) {
		resp := run(t, fmt.Errorf("%w: conversation conv-1", generate.ErrNoCustomerMedia), 404)
		if _, present := resp["detail"]; present {
			t.Error("detail should be absent for no-media errors")
		}
	})

	t.Run("download failure carries the diagnostic detail", func(t *testing.T) {
		resp := run(t, fmt.Errorf("%w: GET https://x returned status 404", generate.ErrFileDownloadFailed), 502)
		detail, _ := resp["detail"].(string)
		if !strings.Contains(detail, "status 404") {
			t.Errorf("detail = %q, want the wrapped error text", detail)
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		run(t, fmt.Errorf("%w: missing session URL", generate.ErrFileUploadFailed), 502)
	})

	t.Run("generation failure", func(t *testing.T) {
		run(t, fmt.Errorf("%w: status 500", generate.ErrGenerationFailed), 502)
	})

	t.Run("unexpected errors report as internal", func(t *testing.T) {
		run(t, fmt.Errorf("something broke"), 500)
	})

	t.Run("extras are echoed on error bodies too", func(t *testing.T) {
		uc := &fakeUseCase{err: fmt.Errorf("%w: timeout", generate.ErrGenerationFailed)}
		router := newTestHandler(uc, testConfig())

		body := `{
			"provider": "google",
			"model": "gemini-2.5-flash",
			"user_message": "hi",
			"processLastConversationFile": false,
			"correlationId": "corr-9"
		}`
		_, resp := postGenerate(t, router, body, nil)
		if resp["correlationId"] != "corr-9" {
			t.Errorf("correlationId = %v, want corr-9", resp["correlationId"])
		}
	})
}

func TestGenerateCredentials(t *testing.T) {
	t.Run("header credentials win", func(t *testing.T) {
		uc := &fakeUseCase{}
		cfg := testConfig()
		cfg.Genesys.ClientID = "cfg-id"
		cfg.Genesys.ClientSecret = "cfg-secret"
		router := newTestHandler(uc, cfg)

		postGenerate(t, router, validBody(), map[string]string{
			"X-Genesys-Client-Id":     "hdr-id",
			"X-Genesys-Client-Secret": "hdr-secret",
		})

		creds := uc.calls[0].creds
		if creds.ClientID != "hdr-id" || creds.ClientSecret != "hdr-secret" {
			t.Errorf("creds = %+v, want the header pair", creds)
		}
	})

	t.Run("falls back to configured credentials", func(t *testing.T) {
		uc := &fakeUseCase{}
		cfg := testConfig()
		cfg.Genesys.ClientID = "cfg-id"
		cfg.Genesys.ClientSecret = "cfg-secret"
		router := newTestHandler(uc, cfg)

		postGenerate(t, router, validBody(), nil)

		creds := uc.calls[0].creds
		if creds.ClientID != "cfg-id" || creds.ClientSecret != "cfg-secret" {
			t.Errorf("creds = %+v, want the configured pair", creds)
		}
	})

	t.Run("incomplete header pair falls back whole", func(t *testing.T) {
		uc := &fakeUseCase{}
		cfg := testConfig()
		cfg.Genesys.ClientID = "cfg-id"
		cfg.Genesys.ClientSecret = "cfg-secret"
		router := newTestHandler(uc, cfg)

		postGenerate(t, router, validBody(), map[string]string{
			"X-Genesys-Client-Id": "hdr-id",
		})

		creds := uc.calls[0].creds
		if creds.ClientID != "cfg-id" || creds.ClientSecret != "cfg-secret" {
			t.Errorf("creds = %+v, want the configured pair", creds)
		}
	})
}
