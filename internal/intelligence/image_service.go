package intelligence

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/prompt"
)

// ImageService renders creative visuals. Results are data URLs ready to be
// attached to a creative node; an empty URL means the provider withheld the
// image (safety filtering) and the creative ships without one.
type ImageService interface {
	CreativeImage(ctx context.Context, p prompt.ImageParams, aspectRatio string) (string, llm.Usage, error)
	CarouselImages(ctx context.Context, p prompt.ImageParams) ([]string, llm.Usage, error)
}

type imageService struct {
	client llm.Client

	mu  sync.Mutex
	rng *rand.Rand
}

// NewImageService creates an ImageService. The rng drives candid
// environment and style variation between renders.
func NewImageService(client llm.Client, rng *rand.Rand) ImageService {
	return &imageService{client: client, rng: rng}
}

func (s *imageService) buildPrompt(p prompt.ImageParams) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return prompt.Image(p, s.rng)
}

func (s *imageService) CreativeImage(ctx context.Context, p prompt.ImageParams, aspectRatio string) (string, llm.Usage, error) {
	return s.render(ctx, s.buildPrompt(p), aspectRatio, p.Project.ProductReferenceImage, nil)
}

// CarouselImages renders the three-act carousel. Slide 1 doubles as the
// style anchor for slides 2 and 3 so the subject stays consistent.
func (s *imageService) CarouselImages(ctx context.Context, p prompt.ImageParams) ([]string, llm.Usage, error) {
	slidePrompts := prompt.CarouselSlides(p.Project, p.Format, p.Angle, p.TechnicalPrompt)

	var (
		urls   []string
		usage  llm.Usage
		anchor *llm.Blob
	)
	for _, slidePrompt := range slidePrompts {
		sp := p
		sp.TechnicalPrompt = slidePrompt

		url, u, err := s.render(ctx, s.buildPrompt(sp), "1:1", p.Project.ProductReferenceImage, anchor)
		usage = usage.Add(u)
		if err != nil {
			return urls, usage, err
		}
		if url == "" {
			continue
		}
		urls = append(urls, url)
		if anchor == nil {
			data, mime, decErr := decodeDataURL(url)
			if decErr == nil {
				anchor = &llm.Blob{MIME: mime, Data: data}
			}
		}
	}
	return urls, usage, nil
}

func (s *imageService) render(ctx context.Context, finalPrompt, aspectRatio string, reference []byte, anchor *llm.Blob) (string, llm.Usage, error) {
	req := llm.ImageRequest{
		Task:        llm.TaskImage,
		Prompt:      finalPrompt,
		AspectRatio: aspectRatio,
	}
	if anchor != nil {
		req.References = append(req.References, *anchor)
		req.Prompt += " " + prompt.StyleAnchorInstruction()
	} else if len(reference) > 0 {
		req.References = append(req.References, llm.Blob{MIME: "image/png", Data: reference})
		req.Prompt += " " + prompt.ReferenceInstruction()
	}

	res, err := s.client.GenerateImage(ctx, req)
	if err != nil {
		return "", llm.Usage{}, err
	}
	if len(res.Data) == 0 {
		return "", res.Usage, nil
	}
	mime := res.MIME
	if mime == "" {
		mime = "image/png"
	}
	url := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(res.Data))
	return url, res.Usage, nil
}

func decodeDataURL(url string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data url")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || payload == "" {
		return nil, "", fmt.Errorf("malformed data url")
	}
	mime := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}
