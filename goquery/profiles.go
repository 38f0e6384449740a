package goquery

import "newsharvest"

// GenericProfile returns the fallback profile of broadly-applicable
// structural selectors: semantic article/main containers, the ARIA main
// role, and common content/article/story class or id substrings.
func GenericProfile() newsharvest.Profile {
	return newsharvest.Profile{
		Source: newsharvest.GenericSource,
		Selectors: []string{
			"article",
			"main",
			`div[role="main"]`,
			`div[class*="content"]`,
			`div[class*="article"]`,
			`div[class*="story"]`,
			`div[class*="post"]`,
			`div[id*="content"]`,
			`div[id*="article"]`,
			`div[id*="story"]`,
		},
	}
}

// BuiltinProfiles returns the selector profiles empirically validated
// against each supported news source. Selectors are ordered most specific
// first; the trailing entries are shared fallbacks that occasionally catch
// redesigned article templates.
func BuiltinProfiles() []newsharvest.Profile {
	return []newsharvest.Profile{
		{
			Source: "PR Newswire",
			Selectors: []string{
				"div.content-release",
				"div.release-body",
				"div#main-content",
				"div#newsContent",
				"article",
			},
		},
		{
			Source: "Economic Times",
			Selectors: []string{
				"div.etArticleText",
				"section.artText",
				"div.artText",
				"div#articleBody",
				"div.article_body",
				"div.Normal",
			},
		},
		{
			Source: "LiveMint",
			Selectors: []string{
				`div[data-vars-section="article"]`,
				"div.contentSec",
				"div.mainArea",
				"div.textRubik",
				`div[class*="articleBody"]`,
				"div.articlePage",
				"div.FirstEle",
				"div.paywall",
				"div.main-content",
				"div.article-content",
				"div.story-content",
				"div#content",
				"div.content",
				"article",
				"main",
				`[role="main"]`,
				"div.storyContent",
				"div.storyDetails",
				"div.story-body",
				"div.article-body",
				"div.post-content",
				"div.entry-content",
				"section.article",
				"section.story",
				`div[class*="content"]`,
				`div[class*="article"]`,
				`div[class*="story"]`,
				`div[class*="text"]`,
				`div[id*="content"]`,
				`div[id*="article"]`,
				`div[id*="story"]`,
			},
		},
		{
			Source: "The Hindu",
			Selectors: []string{
				"div.articlebodycontent",
				"div.paywall",
				"div.article-content",
				`div[class*="article-body"]`,
				`div[class*="story-body"]`,
				`div[itemprop="articleBody"]`,
				"div.content-body",
				"div.story-element-text",
				"section.paywall",
				"div.articletext",
				"div.story-content",
			},
		},
		{
			Source: "Zee News",
			Selectors: []string{
				"div.article-content",
				"div#story",
				"div.articleText",
				"div.newsDetails",
				"div.story-text",
				"div.content-wrapper",
				"div.article-body",
				"div.news-content",
				"div.story-content",
				"div.main-content",
			},
		},
		{
			Source: "Hindustan Times",
			Selectors: []string{
				"div.storyDetails",
				"div.htImport",
				`div[class*="detail-body"]`,
				"div.story-details",
				"div.content-wrapper",
				"div.article-content",
				"div.story-content",
				"div.main-content",
				"div.detail-content",
				"div.story-element",
			},
		},
		{
			Source: "India Today",
			Selectors: []string{
				"div#story",
				"div.description",
				"div.article-body",
				"div#story-left",
				"div.story-content",
				"div.content-wrapper",
				"div.main-content",
				"div.article-content",
				"div.story-details",
				"div.post-content",
			},
		},
		{
			Source: "India TV News",
			Selectors: []string{
				"div.article_content",
				"div#articleBody",
				"div.story-content",
				"div.content-wrapper",
				"div.article-body",
				"div.news-content",
				"div.main-content",
				"div.story-text",
				"div.article-container",
				"div.story-details",
			},
		},
		{
			Source: "Times of India",
			Selectors: []string{
				"div.Normal",
				"div._s30J",
				"div.article_content",
				"div.ga-headlines",
				"div.content",
				"div.story-content",
				"div.article-body",
				"div.main-content",
				"div._3YYSt",
				"div.story-text",
				"div.content-wrapper",
			},
		},
		{
			Source: "ET Now",
			Selectors: []string{
				"div.article__content",
				"div.content_box",
				"div.article_body",
				"div.story-content",
				"div.article-content",
				"div.content-wrapper",
				"div.main-content",
				"div.post-content",
				"div.story-text",
				"div.article-container",
			},
		},
		{
			Source: "Indian Express",
			Selectors: []string{
				"div.full-details",
				"div.ie-first-para",
				"div.article-details",
				"div.story-content",
				"div.content-wrapper",
				"div.article-content",
				"div.main-content",
				"div.story-text",
				"div.post-content",
				"div.story-element",
			},
		},
		{
			Source: "News18",
			Selectors: []string{
				"div.article_container",
				"div#article_body",
				"div.storyContent",
				"div.story-content",
				"div.article-content",
				"div.content-wrapper",
				"div.main-content",
				"div.news-content",
				"div.story-text",
				"div.post-content",
			},
		},
		{
			Source: "Business Standard",
			Selectors: []string{
				"div.storyContent",
				"div#story-content",
				"div.article-content",
				"div.story-text",
				"div.content-wrapper",
				"div.main-content",
				"div.story-content",
				"div.article-body",
				"div.post-content",
				"div.story-element",
			},
		},
		{
			Source: "Deccan Herald",
			Selectors: []string{
				"div.article-main",
				"div.field-items",
				"div.article-content",
				"div.story-content",
				"div.content-wrapper",
				"div.main-content",
				"div.story-text",
				"div.article-body",
				"div.post-content",
				"div.story-element",
			},
		},
		{
			Source: "Firstpost",
			Selectors: []string{
				"div.text-copy",
				"div.article-full-content",
				"div.main-article",
				"div.story-content",
				"div.article-content",
				"div.content-wrapper",
				"div.main-content",
				"div.story-text",
				"div.post-content",
				"div.article-body",
			},
		},
		{
			Source: "The Print",
			Selectors: []string{
				"div.tdb_single_post_content",
				"div.content-wrap",
				"div.td-post-content",
				"div.story-content",
				"div.article-content",
				"div.main-content",
				"div.content-wrapper",
				"div.story-text",
				"div.post-content",
				"div.article-body",
			},
		},
		{
			Source: "The Wire",
			Selectors: []string{
				"div.article-content",
				"div#article_content",
				"div.td-post-content",
				"div.story-content",
				"div.content-wrapper",
				"div.main-content",
				"div.story-text",
				"div.post-content",
				"div.article-body",
				"div.story-element",
			},
		},
		{
			Source: "Moneycontrol",
			Selectors: []string{
				"div#article-main",
				"div.content_wrapper",
				"div#story-main",
				"div.story-content",
				"div.article-content",
				"div.main-content",
				"div.content-body",
				"div.story-text",
				"div.post-content",
				"div.article-body",
			},
		},
		{
			Source: "Free Press Journal",
			Selectors: []string{
				"div.article-detail",
				"div#story-content",
				"div.main-article-content",
				"div.story-content",
				"div.article-content",
				"div.content-wrapper",
				"div.main-content",
				"div.story-text",
				"div.post-content",
				"div.article-body",
			},
		},
	}
}
