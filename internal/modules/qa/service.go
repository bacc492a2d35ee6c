package qa

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"fitoapteka.kz/app/internal/modules/catalog"
	"fitoapteka.kz/app/internal/modules/content"
	"fitoapteka.kz/app/internal/shared/apperr"
)

const (
	minQueryRunes = 3
	productLimit  = 12
	postLimit     = 8
	brandLimit    = 50
)

const (
	systemPrompt = "Ты консультант по косметике/фитопродукции. Отвечай кратко, точно, с оговорками по безопасности. " +
		"Если нет данных, говори честно. Всегда учитывай бренды из контекста и используй их в рекомендациях, когда это уместно."

	NotConfiguredAnswer = "ИИ не настроен (нет OPENAI_API_KEY). Добавьте ключ и повторите вопрос."
	NoAnswer            = "Не удалось получить ответ."
)

type ProductSource interface {
	SearchProducts(ctx context.Context, terms []string, limit int) ([]catalog.Product, error)
	ActiveBrands(ctx context.Context, limit int) ([]catalog.Brand, error)
}

type PostSource interface {
	SearchPosts(ctx context.Context, terms []string, limit int) ([]content.Post, error)
}

type Answer struct {
	Answer      string `json:"answer"`
	UsedContext string `json:"usedContext,omitempty"`
}

type Service struct {
	products  ProductSource
	posts     PostSource
	completer Completer // nil = not configured
	logger    *slog.Logger
}

func NewService(products ProductSource, posts PostSource, completer Completer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{products: products, posts: posts, completer: completer, logger: logger}
}

// Ask answers question using catalog products, blog posts and brands as
// context.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	q := strings.TrimSpace(question)
	if utf8.RuneCountInString(q) < minQueryRunes {
		return Answer{}, apperr.InvalidErr("query_too_short", nil)
	}

	var terms []string
	if tokens := Tokenize(q); len(tokens) > 0 {
		terms = append([]string{q}, tokens...)
	}

	var (
		products []catalog.Product
		posts    []content.Post
		brands   []catalog.Brand
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.products.SearchProducts(gctx, terms, productLimit)
		return err
	})
	g.Go(func() (err error) {
		posts, err = s.posts.SearchPosts(gctx, terms, postLimit)
		return err
	})
	g.Go(func() (err error) {
		brands, err = s.products.ActiveBrands(gctx, brandLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return Answer{}, apperr.Wrap(err)
	}

	block := BuildContext(brands, products, posts)

	if s.completer == nil {
		return Answer{Answer: NotConfiguredAnswer, UsedContext: truncateRunes(block, usedContextRunes)}, nil
	}

	text, err := s.completer.Complete(ctx, systemPrompt, "Вопрос: "+q+"\n\nКонтекст:\n"+block)
	switch {
	case errors.Is(err, ErrNoCompletion):
		s.logger.WarnContext(ctx, "qa completion unusable", "err", err)
		return Answer{Answer: NoAnswer}, nil
	case err != nil:
		return Answer{}, apperr.Wrap(err)
	}
	return Answer{Answer: text}, nil
}
