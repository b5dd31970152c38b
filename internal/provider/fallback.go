package provider

import (
	"time"

	"newspulse/backend/internal/model"
)

// FallbackSource is the source label used for reference dataset items.
const FallbackSource = "fallback"

// FallbackDatasetVersion identifies the shipped reference dataset. Bump it
// when the articles or videos below change.
const FallbackDatasetVersion = "2025-01-15"

var fallbackBase = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

// FallbackArticles returns the reference dataset served when every live
// provider fails. Items are pre-classified so the dashboard keeps a known
// sentiment distribution of three positive, one neutral and two negative.
func FallbackArticles() []model.Article {
	return []model.Article{
		{
			ID:          "fallback-1",
			Title:       "Rural vaccination drive reports strong success",
			Content:     "The health ministry said hospital coverage improved in every district, with doctors vaccinating over two million people this quarter.",
			Source:      FallbackSource,
			URL:         "https://example.org/news/rural-vaccination-drive",
			PublishedAt: fallbackBase,
			Department:  model.DepartmentHealth,
			Sentiment:   model.SentimentPositive,
			Language:    "en",
		},
		{
			ID:          "fallback-2",
			Title:       "शेयर बाजार में भारी गिरावट, निवेशकों को नुकसान",
			Content:     "विदेशी संकेतों के दबाव में प्रमुख सूचकांक दो प्रतिशत से अधिक टूटे और बैंकिंग शेयरों में बिकवाली रही।",
			Source:      FallbackSource,
			URL:         "https://example.org/news/share-bazaar-girawat",
			PublishedAt: fallbackBase.Add(1 * time.Hour),
			Department:  model.DepartmentFinance,
			Sentiment:   model.SentimentNegative,
			Language:    "hi",
		},
		{
			ID:          "fallback-3",
			Title:       "University enrollment shows record growth",
			Content:     "State colleges report a marked increase in student admissions after the new scholarship scheme, a success education officials credit to outreach programs.",
			Source:      FallbackSource,
			URL:         "https://example.org/news/university-enrollment-growth",
			PublishedAt: fallbackBase.Add(2 * time.Hour),
			Department:  model.DepartmentEducation,
			Sentiment:   model.SentimentPositive,
			Language:    "en",
		},
		{
			ID:          "fallback-4",
			Title:       "Joint military exercise scheduled along eastern sector",
			Content:     "The army confirmed a routine security exercise with partner nations next month. Dates and participating units were announced by the defense ministry.",
			Source:      FallbackSource,
			URL:         "https://example.org/news/joint-military-exercise",
			PublishedAt: fallbackBase.Add(3 * time.Hour),
			Department:  model.DepartmentDefense,
			Sentiment:   model.SentimentNeutral,
			Language:    "en",
		},
		{
			ID:          "fallback-5",
			Title:       "நெல் சாகுபடி அறுவடை இந்த ஆண்டு கணிசமாக உயர்வு",
			Content:     "பருவமழை சாதகமாக இருந்ததால் விவசாயிகளின் மகசூல் கடந்த ஆண்டை விட அதிகரித்துள்ளதாக வேளாண் துறை தெரிவித்துள்ளது.",
			Source:      FallbackSource,
			URL:         "https://example.org/news/nel-aruvadai-uyarvu",
			PublishedAt: fallbackBase.Add(4 * time.Hour),
			Department:  model.DepartmentAgriculture,
			Sentiment:   model.SentimentPositive,
			Language:    "ta",
		},
		{
			ID:          "fallback-6",
			Title:       "Railway services hit by signal failure, commuters face long delays",
			Content:     "A signalling problem on the suburban railway line halted trains for hours. Officials called the disruption a crisis for morning traffic.",
			Source:      FallbackSource,
			URL:         "https://example.org/news/railway-signal-failure",
			PublishedAt: fallbackBase.Add(5 * time.Hour),
			Department:  model.DepartmentTransport,
			Sentiment:   model.SentimentNegative,
			Language:    "en",
		},
	}
}

// FallbackVideos returns the reference video items. There is no live video
// provider, so these ship alongside the fallback articles in every build.
func FallbackVideos() []model.VideoNews {
	return []model.VideoNews{
		{
			ID:          "fallback-video-1",
			Title:       "Budget session highlights in three minutes",
			Thumbnail:   "https://example.org/media/budget-session.jpg",
			VideoURL:    "https://example.org/media/budget-session.mp4",
			Source:      FallbackSource,
			PublishedAt: fallbackBase,
			Duration:    "3:05",
			Transcript:  "The finance minister presented the annual budget with a focus on infrastructure investment and market reforms.",
			Department:  model.DepartmentFinance,
			Sentiment:   model.SentimentNeutral,
		},
		{
			ID:          "fallback-video-2",
			Title:       "Inside the new district hospital wing",
			Thumbnail:   "https://example.org/media/hospital-wing.jpg",
			VideoURL:    "https://example.org/media/hospital-wing.mp4",
			Source:      FallbackSource,
			PublishedAt: fallbackBase.Add(1 * time.Hour),
			Duration:    "4:20",
			Transcript:  "A tour of the newly opened hospital wing, which doctors say will improve access to medical care for surrounding villages.",
			Department:  model.DepartmentHealth,
			Sentiment:   model.SentimentPositive,
		},
		{
			ID:          "fallback-video-3",
			Title:       "Monsoon outlook for the sowing season",
			Thumbnail:   "https://example.org/media/monsoon-outlook.jpg",
			VideoURL:    "https://example.org/media/monsoon-outlook.mp4",
			Source:      FallbackSource,
			PublishedAt: fallbackBase.Add(2 * time.Hour),
			Duration:    "2:45",
			Transcript:  "Meteorologists expect a normal monsoon, which farmers hope will lift crop output after last year's shortfall.",
			Department:  model.DepartmentAgriculture,
			Sentiment:   model.SentimentNeutral,
		},
	}
}
