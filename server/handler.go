package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RazorNd/telegram-login/auth"
	"github.com/RazorNd/telegram-login/logger"
	"github.com/RazorNd/telegram-login/login"
	"github.com/RazorNd/telegram-login/session"
)

// sessionCookie is the cookie carrying the session token when the login
// response is a redirect.
const sessionCookie = "telegram_session"

// LoginHandler converts the widget redirect into an authenticated session.
// It is the HTTP entry point of the pipeline: query parameters in, session
// token (or typed rejection) out.
type LoginHandler struct {
	authenticator *auth.Authenticator
	sessions      *session.Service
	cfg           Config
	log           *logger.Logger
}

// NewLoginHandler creates a LoginHandler.
func NewLoginHandler(authenticator *auth.Authenticator, sessions *session.Service, cfg Config, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		authenticator: authenticator,
		sessions:      sessions,
		cfg:           cfg,
		log:           log.WithComponent("login"),
	}
}

// Handle processes GET {login_path}?id=…&auth_date=…&hash=….
func (h *LoginHandler) Handle(c *gin.Context) {
	user, err := login.UserFromParams(queryParams(c))
	if err != nil {
		h.log.Warn("Malformed widget payload", map[string]any{
			logger.FieldError: err.Error(),
		})
		RespondWithError(c, err)
		return
	}

	authn, err := h.authenticator.AuthenticateContext(c.Request.Context(), user)
	if err != nil {
		h.log.Warn("Login rejected", map[string]any{
			logger.FieldTelegramID: user.ID,
			logger.FieldError:      err.Error(),
		})
		RespondWithError(c, err)
		return
	}

	token, err := h.sessions.Issue(authn)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	h.log.Info("User authenticated", map[string]any{
		logger.FieldTelegramID: authn.Principal.TelegramID(),
	})

	if h.cfg.SuccessRedirect != "" {
		c.SetCookie(sessionCookie, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, h.cfg.SuccessRedirect)
		return
	}
	RespondOK(c, gin.H{"token": token})
}

// queryParams flattens the request query to the single-valued mapping the
// claim constructor expects. Repeated parameters keep their first value.
func queryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
