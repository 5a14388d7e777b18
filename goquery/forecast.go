package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mbarbey/bergfex"
)

// ForecastImages extracts a snow-forecast page's image gallery. Gallery
// containers are read in document order: the first is the daily forecast
// map, the second the 12-hour map. A third container is the seasonal
// summary and applies only when the requested page number is non-zero;
// on page zero any third container is ignored and the summary keys are
// omitted.
func (e *Extractor) ForecastImages(html string, page int) (bergfex.ForecastImages, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	images := bergfex.ForecastImages{}

	containers := doc.Find("div.snowforecast-img")
	if containers.Length() == 0 {
		e.logger.Warn("no forecast gallery containers found")
		return images, nil
	}

	containers.Each(func(i int, container *goquery.Selection) {
		link := container.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}
		href := strings.TrimSpace(link.AttrOr("href", ""))
		caption := strings.TrimSpace(link.AttrOr("data-caption", ""))

		switch i {
		case 0:
			setImage(images, bergfex.ForecastDailyURL, bergfex.ForecastDailyCaption, href, caption)
		case 1:
			setImage(images, bergfex.ForecastTwelveHourURL, bergfex.ForecastTwelveHourCaption, href, caption)
		case 2:
			if page != 0 {
				setImage(images, bergfex.ForecastSummaryURL, bergfex.ForecastSummaryCaption, href, caption)
			}
		}
	})

	return images, nil
}

func setImage(images bergfex.ForecastImages, urlKey, captionKey, href, caption string) {
	if href != "" {
		images[urlKey] = href
	}
	if caption != "" {
		images[captionKey] = caption
	}
}
