package registry

import (
	metav1 "pingerd/pkg/meta/v1"
)

// DefaultEndpoints is the built-in ping catalog. URL templates with a %s
// placeholder receive the escaped target URL; plain POST/XMLRPC endpoints get
// the target in the request body instead.
func DefaultEndpoints() []metav1.Endpoint {
	return []metav1.Endpoint{
		// Google-owned notification services.
		{ID: "google-feedburner", Name: "FeedBurner", Category: metav1.CategoryGoogle, URLTemplate: "https://feedburner.google.com/fb/a/ping", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "google-feedburner-ping", Name: "FeedBurner Ping", Category: metav1.CategoryGoogle, URLTemplate: "https://ping.feedburner.com/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "google-feedburner-feeds", Name: "FeedBurner Feeds", Category: metav1.CategoryGoogle, URLTemplate: "https://feeds.feedburner.com/fb/a/ping", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "google-blogsearch", Name: "Google Blog Search", Category: metav1.CategoryGoogle, URLTemplate: "https://blogsearch.google.com/ping?url=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "google-blogsearch-rpc", Name: "Google Blog Search RPC", Category: metav1.CategoryGoogle, URLTemplate: "https://blogsearch.google.com/ping/RPC2", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "google-pubsubhubbub", Name: "PubSubHubbub", Category: metav1.CategoryGoogle, URLTemplate: "https://pubsubhubbub.appspot.com/publish", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS, Expects: []int{200, 202, 204}},
		{ID: "google-pubsubhubbub-hub", Name: "PubSubHubbub Hub", Category: metav1.CategoryGoogle, URLTemplate: "https://pubsubhubbub.appspot.com/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS, Expects: []int{200, 202, 204}},
		{ID: "google-indexing-api", Name: "Google Indexing API", Category: metav1.CategoryGoogle, URLTemplate: "https://searchconsole.googleapis.com/v1/urlNotifications:publish", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},

		// Sitemap submission to the big search engines.
		{ID: "search-google-sitemap", Name: "Google Sitemap Ping", Category: metav1.CategorySearchEngines, URLTemplate: "https://www.google.com/ping?sitemap=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "search-google-webmasters", Name: "Google Webmasters Ping", Category: metav1.CategorySearchEngines, URLTemplate: "https://www.google.com/webmasters/tools/ping?sitemap=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "search-bing-sitemap", Name: "Bing Sitemap Ping", Category: metav1.CategorySearchEngines, URLTemplate: "https://www.bing.com/ping?sitemap=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "search-bing-webmaster", Name: "Bing Webmaster Ping", Category: metav1.CategorySearchEngines, URLTemplate: "https://www.bing.com/webmaster/ping.aspx?siteMap=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "search-yandex-sitemap", Name: "Yandex Sitemap Ping", Category: metav1.CategorySearchEngines, URLTemplate: "https://webmaster.yandex.com/ping?sitemap=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "search-indexnow", Name: "IndexNow", Category: metav1.CategorySearchEngines, URLTemplate: "https://api.indexnow.org/indexnow?url=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap, Expects: []int{200, 202}},
		{ID: "search-bing-indexnow", Name: "Bing IndexNow", Category: metav1.CategorySearchEngines, URLTemplate: "https://www.bing.com/indexnow?url=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap, Expects: []int{200, 202}},
		{ID: "search-yandex-indexnow", Name: "Yandex IndexNow", Category: metav1.CategorySearchEngines, URLTemplate: "https://yandex.com/indexnow?url=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassSitemap, Expects: []int{200, 202}},

		// Global RSS/blog aggregators.
		{ID: "rss-pingomatic", Name: "Ping-O-Matic", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://pingomatic.com/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-pingomatic-rpc", Name: "Ping-O-Matic RPC", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://rpc.pingomatic.com/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-feedsubmitter", Name: "Feed Submitter", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.feedsubmitter.com/ping.php", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-pingler", Name: "Pingler", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.pingler.com/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogpeople", Name: "BlogPeople", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.blogpeople.net/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogpeople-submit", Name: "BlogPeople Submit", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.blogpeople.net/servlet/submit", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-technorati", Name: "Technorati", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://rpc.technorati.com/rpc/ping", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogflux", Name: "BlogFlux", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.blogflux.com/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-syndic8", Name: "Syndic8", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.syndic8.com/ping", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-pubsub-com", Name: "PubSub.com", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://xping.pubsub.com/ping/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-feedshark", Name: "FeedShark", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.feedshark.brainbliss.com/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-newsisfree", Name: "NewsIsFree", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.newsisfree.com/RPCCloud", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogs-ping", Name: "blo.gs Ping", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://ping.blo.gs/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogs-php", Name: "blo.gs Form", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://blo.gs/ping.php", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-weblogs", Name: "Weblogs.com", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://rpc.weblogs.com/RPC2", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-datashed", Name: "DataShed", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://rcs.datashed.net/RPC2/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-weblogalot", Name: "Weblogalot", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.weblogalot.com/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-popdex", Name: "Popdex", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.popdex.com/addsite", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogdigger", Name: "Blogdigger", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.blogdigger.com/RPC2", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogstreet", Name: "BlogStreet", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.blogstreet.com/xrbin/xmlrpc.cgi", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-bulkpingtool", Name: "Bulk Ping Tool", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://bulkpingtool.com/ping", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogshares", Name: "BlogShares", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.blogshares.com/rpc.php", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-pingoat", Name: "Pingoat", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.pingoat.com/goat/RPC2", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-icerocket", Name: "IceRocket", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://rpc.icerocket.com:10080/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-my-yahoo", Name: "My Yahoo", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://api.my.yahoo.com/RPC2", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-feedpinger", Name: "FeedPinger", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://feedpinger.net/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-a2ping", Name: "A2Ping", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.a2ping.com/ping.php", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-feedage", Name: "Feedage", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.feedage.com/ping.php", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-feed-ping", Name: "Feed-Ping", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.feed-ping.com/ping", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-snipsnap", Name: "SnipSnap", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.snipsnap.org/RPC2", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-weblogues", Name: "Weblogues", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.weblogues.com/RPC/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-moreover", Name: "Moreover", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://www.moreover.com/ping", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-moreover-api", Name: "Moreover API", Category: metav1.CategoryGlobalRSS, URLTemplate: "https://api.moreover.com/ping", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-pingmyblog", Name: "PingMyBlog", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://www.pingmyblog.com", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "rss-blogrolling", Name: "BlogRolling", Category: metav1.CategoryGlobalRSS, URLTemplate: "http://rpc.blogrolling.com/pinger/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},

		// Regional blog ping services.
		{ID: "regional-bloggers-jp", Name: "Bloggers.jp", Category: metav1.CategoryRegional, URLTemplate: "http://ping.bloggers.jp/rpc/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-goo-jp", Name: "goo Blog", Category: metav1.CategoryRegional, URLTemplate: "http://blog.goo.ne.jp/XMLRPC", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-blogmura", Name: "Blogmura", Category: metav1.CategoryRegional, URLTemplate: "http://ping.blogmura.com/rpc/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-fc2", Name: "FC2 Ping", Category: metav1.CategoryRegional, URLTemplate: "http://ping.fc2.com/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-cocolog", Name: "Cocolog", Category: metav1.CategoryRegional, URLTemplate: "http://ping.cocolog-nifty.com/xmlrpc", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-exblog", Name: "Excite Blog", Category: metav1.CategoryRegional, URLTemplate: "http://ping.exblog.jp/xmlrpc", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-with2", Name: "Blog Ranking", Category: metav1.CategoryRegional, URLTemplate: "http://blog.with2.net/ping.php/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-drecom", Name: "Drecom RSS", Category: metav1.CategoryRegional, URLTemplate: "http://ping.rss.drecom.jp/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-dendou", Name: "Dendou", Category: metav1.CategoryRegional, URLTemplate: "http://ping.dendou.jp/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-namaan", Name: "NAMAAN", Category: metav1.CategoryRegional, URLTemplate: "http://ping.namaan.net/rpc/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-twingly", Name: "Twingly", Category: metav1.CategoryRegional, URLTemplate: "http://rpc.twingly.com/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-blogg-de", Name: "Blogg.de", Category: metav1.CategoryRegional, URLTemplate: "http://ping.blogg.de/", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-myblog-de", Name: "Myblog.de", Category: metav1.CategoryRegional, URLTemplate: "http://www.myblog.de/ping.php", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-blogoon", Name: "Blogoon", Category: metav1.CategoryRegional, URLTemplate: "http://www.blogoon.net/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-bitacoras", Name: "Bitacoras", Category: metav1.CategoryRegional, URLTemplate: "http://bitacoras.net/ping", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassRSS},
		{ID: "regional-blogoole", Name: "Blogoole", Category: metav1.CategoryRegional, URLTemplate: "http://www.blogoole.com/ping/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassRSS},

		// Feed validation services, also counted as a ping for availability.
		{ID: "validation-w3c-feed", Name: "W3C Feed Validator", Category: metav1.CategoryValidation, URLTemplate: "https://validator.w3.org/feed/check.cgi?url=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassDefault},
		{ID: "validation-feedvalidator", Name: "FeedValidator.org", Category: metav1.CategoryValidation, URLTemplate: "http://www.feedvalidator.org/check.cgi?url=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassDefault},
		{ID: "validation-feedvalidator-rpc", Name: "FeedValidator RPC", Category: metav1.CategoryValidation, URLTemplate: "http://ping.feedvalidator.org/rpc", Method: metav1.MethodXMLRPC, TimeoutClass: metav1.TimeoutClassDefault},
		{ID: "validation-rssvalidator", Name: "RSS Validator", Category: metav1.CategoryValidation, URLTemplate: "https://www.rssvalidator.com/validate", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassDefault},

		// Web archives.
		{ID: "archive-wayback", Name: "Wayback Machine", Category: metav1.CategoryArchive, URLTemplate: "https://web.archive.org/save/%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassArchive},
		{ID: "archive-wayback-available", Name: "Wayback Availability", Category: metav1.CategoryArchive, URLTemplate: "https://archive.org/wayback/available?url=%s", Method: metav1.MethodGet, TimeoutClass: metav1.TimeoutClassArchive},
		{ID: "archive-today", Name: "Archive.today", Category: metav1.CategoryArchive, URLTemplate: "https://archive.ph/submit/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassArchive},

		// Free directory submission forms.
		{ID: "dir-dmoz-odp", Name: "DMOZ ODP", Category: metav1.CategoryDirectories, URLTemplate: "https://www.dmoz-odp.org/public/suggest", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-jayde", Name: "Jayde", Category: metav1.CategoryDirectories, URLTemplate: "https://www.jayde.com/add_url.html", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-exorank", Name: "ExoRank", Category: metav1.CategoryDirectories, URLTemplate: "https://www.exorank.com/addurl.php", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-freewebsubmission", Name: "Free Web Submission", Category: metav1.CategoryDirectories, URLTemplate: "https://www.freewebsubmission.com/submit-url/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-entireweb", Name: "Entireweb", Category: metav1.CategoryDirectories, URLTemplate: "https://www.entireweb.com/free_submission/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-ssel", Name: "Secret Search Engine Labs", Category: metav1.CategoryDirectories, URLTemplate: "http://www.secretsearchenginelabs.com/add-url.php", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-apple-podcasts", Name: "Apple Podcasts Connect", Category: metav1.CategoryDirectories, URLTemplate: "https://podcastsconnect.apple.com/api/submit", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-spotify-podcasts", Name: "Spotify for Podcasters", Category: metav1.CategoryDirectories, URLTemplate: "https://podcasters.spotify.com/pod/submit", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-google-podcasts", Name: "Google Podcasts", Category: metav1.CategoryDirectories, URLTemplate: "https://play.google.com/podcasts/submit", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-tunein", Name: "TuneIn", Category: metav1.CategoryDirectories, URLTemplate: "https://tunein.com/podcasts/submit/", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-stitcher", Name: "Stitcher", Category: metav1.CategoryDirectories, URLTemplate: "https://www.stitcher.com/content-providers", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-spreaker", Name: "Spreaker", Category: metav1.CategoryDirectories, URLTemplate: "https://www.spreaker.com/cms/podcast/submit", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
		{ID: "dir-podcastone", Name: "PodcastOne", Category: metav1.CategoryDirectories, URLTemplate: "https://www.podcastone.com/submit", Method: metav1.MethodPost, TimeoutClass: metav1.TimeoutClassSitemap},
	}
}
