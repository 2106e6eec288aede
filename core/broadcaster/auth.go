package broadcaster

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/centrifuge/core/logger"
)

// emptyInfo is the JSON encoding of an empty list, signed with every channel.
const emptyInfo = "[]"

const maxAuthBody = 1 << 20

// UserResolver returns the authenticated user of r, or false when there is none.
type UserResolver func(r *http.Request) (string, bool)

// AccessChecker reports whether user may subscribe to channel.
// An error is treated as a denial.
type AccessChecker func(ctx context.Context, user, channel string) (bool, error)

type authRequest struct {
	Client   string          `json:"client"`
	Channels json.RawMessage `json:"channels"`
}

type channelAuth struct {
	Sign   string `json:"sign,omitempty"`
	Info   string `json:"info,omitempty"`
	Status int    `json:"status,omitempty"`
}

// AuthHandler answers channel subscription requests with a signature per
// allowed channel and status 403 per denied one. Requests without a user get 401.
func (b *Broadcaster) AuthHandler(resolve UserResolver, check AccessChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := resolve(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": ErrUnauthenticated.Error()})
			return
		}

		client, channels, err := parseAuthRequest(w, r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		resp := make(map[string]channelAuth, len(channels))
		for _, channel := range channels {
			allowed, err := check(ctx, user, strings.TrimPrefix(channel, "$"))
			if err != nil {
				b.logger.WarnContext(ctx, "channel access check failed",
					logger.Component("broadcaster"),
					logger.UserID(user),
					logger.Channel(channel),
					logger.Error(err),
				)
				allowed = false
			}

			if !allowed {
				resp[channel] = channelAuth{Status: http.StatusForbidden}
				continue
			}
			resp[channel] = channelAuth{
				Sign: b.hub.GenerateChannelSign(client, channel, emptyInfo),
				Info: emptyInfo,
			}
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// parseAuthRequest reads client and channels from a JSON body or a form.
// channels may be a single string or a list.
func parseAuthRequest(w http.ResponseWriter, r *http.Request) (string, []string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req authRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAuthBody)).Decode(&req); err != nil {
			return "", nil, errors.Join(ErrBadRequest, err)
		}
		channels, err := decodeChannels(req.Channels)
		if err != nil {
			return "", nil, errors.Join(ErrBadRequest, err)
		}
		return req.Client, channels, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAuthBody)
	if err := r.ParseForm(); err != nil {
		return "", nil, errors.Join(ErrBadRequest, err)
	}
	channels := r.Form["channels"]
	if len(channels) == 0 {
		channels = r.Form["channels[]"]
	}
	return r.Form.Get("client"), channels, nil
}

func decodeChannels(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, err
	}
	return many, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
