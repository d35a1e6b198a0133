package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

const cityPlaceholder = "{city}"

// ChromedpScraperParams holds parameters for creating the headless-browser scraper
type ChromedpScraperParams struct {
	URLTemplate         string
	TemperatureSelector string
	DescriptionSelector string
	Timeout             time.Duration
	// ChromePath overrides browser discovery when set
	ChromePath string
}

// ChromedpScraper implements WeatherScraper by rendering the page in headless Chrome.
// Every call starts its own browser process and tears it down on return.
type ChromedpScraper struct {
	urlTemplate         string
	temperatureSelector string
	descriptionSelector string
	timeout             time.Duration
	allocatorOptions    []chromedp.ExecAllocatorOption
}

func NewChromedpScraper(params ChromedpScraperParams) (*ChromedpScraper, error) {
	if !strings.Contains(params.URLTemplate, cityPlaceholder) {
		return nil, errors.NewConfigurationError("scrape URL template must contain "+cityPlaceholder, nil)
	}
	if params.TemperatureSelector == "" || params.DescriptionSelector == "" {
		return nil, errors.NewConfigurationError("scrape selectors cannot be empty", nil)
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Headless,
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if params.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(params.ChromePath))
	}

	return &ChromedpScraper{
		urlTemplate:         params.URLTemplate,
		temperatureSelector: params.TemperatureSelector,
		descriptionSelector: params.DescriptionSelector,
		timeout:             timeout,
		allocatorOptions:    opts,
	}, nil
}

// Scrape loads the city's page and reads both selectors. A selector that matches
// nothing yields an empty field, not an error.
func (s *ChromedpScraper) Scrape(ctx context.Context, city string) (*ports.ScrapedWeather, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, s.allocatorOptions...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	taskCtx, cancelTask := context.WithTimeout(browserCtx, s.timeout)
	defer cancelTask()

	var temperature, description string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(s.PageURL(city)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(textContentScript(s.temperatureSelector), &temperature),
		chromedp.Evaluate(textContentScript(s.descriptionSelector), &description),
	)
	if err != nil {
		return nil, errors.NewScrapeError(fmt.Sprintf("failed to scrape weather page for %s", city), err)
	}

	return &ports.ScrapedWeather{
		Temperature: strings.TrimSpace(temperature),
		Description: strings.TrimSpace(description),
	}, nil
}

// PageURL builds the page address for a city
func (s *ChromedpScraper) PageURL(city string) string {
	return strings.ReplaceAll(s.urlTemplate, cityPlaceholder, url.QueryEscape(city))
}

// textContentScript returns a JS expression evaluating to the trimmed text of the
// first element matching selector, or "" when nothing matches.
func textContentScript(selector string) string {
	quoted, _ := json.Marshal(selector)
	return fmt.Sprintf(`(() => { const el = document.querySelector(%s); return el ? el.innerText.trim() : ""; })()`, quoted)
}
