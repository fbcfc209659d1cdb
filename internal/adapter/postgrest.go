package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	restPathPrefix = "/rest/v1/"

	headerAPIKey = "apikey"
	headerPrefer = "Prefer"

	preferRepresentation = "return=representation"
	// acceptSingleObject makes PostgREST return one JSON object instead of
	// an array, failing with 406 when no row matched.
	acceptSingleObject = "application/vnd.pgrst.object+json"
)

type postgRESTNotesGateway struct {
	client *utils.HTTPClient
	key    string
	table  string
	tokens TokenSource
	now    func() time.Time

	logger *logger.Logger
}

// NewPostgRESTNotesGateway constructs a [NotesGateway] over the PostgREST
// API of a Supabase project. Data requests are authorized with the access
// token of tokens, or with the API key when nobody is signed in.
func NewPostgRESTNotesGateway(cfg config.ClientRemote, tokens TokenSource, log *logger.Logger) (NotesGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote url: %w", err)
	}

	table := cfg.Table
	if table == "" {
		table = models.Note{}.TableName()
	}

	return &postgRESTNotesGateway{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		key:    cfg.Key,
		table:  table,
		tokens: tokens,
		now:    time.Now,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (g *postgRESTNotesGateway) path() string {
	return restPathPrefix + g.table
}

// request returns a request carrying the api key and the bearer token.
func (g *postgRESTNotesGateway) request(ctx context.Context) *resty.Request {
	bearer := g.key
	if g.tokens != nil {
		if token := g.tokens.AccessToken(); token != "" {
			bearer = token
		}
	}

	return g.client.R().
		SetContext(ctx).
		SetHeader(headerAPIKey, g.key).
		SetAuthToken(bearer)
}

func eq(v string) string { return "eq." + v }

func scopeParams(opts models.ListOptions) url.Values {
	params := url.Values{}
	if !opts.IncludeDeleted {
		params.Set("is_deleted", eq("false"))
	}
	if !opts.IncludeArchived {
		params.Set("is_archived", eq("false"))
	}
	if opts.Owner != nil {
		params.Set("user_id", eq(*opts.Owner))
	}
	return params
}

func (g *postgRESTNotesGateway) List(ctx context.Context, opts models.ListOptions) ([]models.Note, error) {
	params := scopeParams(opts)
	params.Set("select", "*")
	params.Set("order", "updated_at.desc")

	notes := make([]models.Note, 0)
	resp, err := g.request(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&notes).
		Get(g.path())
	if err != nil {
		return nil, transportError("list notes", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (g *postgRESTNotesGateway) Get(ctx context.Context, id string, opts models.ListOptions) (models.Note, error) {
	params := scopeParams(opts)
	params.Set("select", "*")
	params.Set("id", eq(id))

	var note models.Note
	resp, err := g.request(ctx).
		SetHeader("Accept", acceptSingleObject).
		SetQueryParamsFromValues(params).
		SetResult(&note).
		Get(g.path())
	if err != nil {
		return models.Note{}, transportError("get note", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

type createNoteRequest struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	IsArchived bool      `json:"is_archived"`
	IsDeleted  bool      `json:"is_deleted"`
	UserID     *string   `json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (g *postgRESTNotesGateway) Create(ctx context.Context, draft models.NoteDraft, owner *string) (models.Note, error) {
	now := g.now().UTC()
	body := createNoteRequest{
		Title:      draft.Title,
		Content:    draft.Content,
		Tags:       draft.Tags,
		IsArchived: draft.IsArchived,
		UserID:     owner,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if body.Tags == nil {
		body.Tags = []string{}
	}

	var created models.Note
	resp, err := g.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", acceptSingleObject).
		SetHeader(headerPrefer, preferRepresentation).
		SetBody(body).
		SetResult(&created).
		Post(g.path())
	if err != nil {
		return models.Note{}, transportError("create note", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

func (g *postgRESTNotesGateway) Update(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	now := g.now().UTC()
	patch.UpdatedAt = &now

	var updated models.Note
	resp, err := g.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", acceptSingleObject).
		SetHeader(headerPrefer, preferRepresentation).
		SetQueryParam("id", eq(id)).
		SetBody(patch).
		SetResult(&updated).
		Patch(g.path())
	if err != nil {
		return models.Note{}, transportError("update note", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

func (g *postgRESTNotesGateway) SoftDelete(ctx context.Context, id string) error {
	deleted := true
	if _, err := g.Update(ctx, id, models.NotePatch{IsDeleted: &deleted}); err != nil {
		g.logger.Debug().Err(err).Str("func", "postgRESTNotesGateway.SoftDelete").Str("note_id", id).Msg("soft delete failed")
		return err
	}
	return nil
}

func (g *postgRESTNotesGateway) SetArchived(ctx context.Context, id string, archived bool) error {
	if _, err := g.Update(ctx, id, models.NotePatch{IsArchived: &archived}); err != nil {
		g.logger.Debug().Err(err).Str("func", "postgRESTNotesGateway.SetArchived").
			Str("note_id", id).Bool("archived", archived).Msg("set archived failed")
		return err
	}
	return nil
}
