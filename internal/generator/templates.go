package generator

import "github.com/creativespark/creativespark/internal/model"

// template is a parameterized idea; %s placeholders take the industry.
type template struct {
	title       string
	description string
	keywords    []string
}

// ideaTemplates holds the per-content-type idea pools.
// Each pool carries six entries; a generation call picks three to six.
var ideaTemplates = map[model.ContentType][]template{
	model.ContentBlog: {
		{
			title:       "The Ultimate Guide to %s Trends in 2025",
			description: "A comprehensive overview of emerging %s trends that will shape the market in 2025. This in-depth analysis provides actionable insights for professionals looking to stay ahead of the curve.",
			keywords:    []string{"trends", "2025", "guide"},
		},
		{
			title:       "10 %s Strategies That Actually Work",
			description: "Discover proven strategies that have delivered real results in the %s sector. Learn from case studies and expert opinions to improve your approach.",
			keywords:    []string{"strategies", "proven", "results"},
		},
		{
			title:       "How to Solve the Biggest Problems in %s",
			description: "A practical guide to addressing the most significant challenges facing %s professionals today. Includes expert tips and innovative solutions.",
			keywords:    []string{"problems", "solutions", "challenges"},
		},
		{
			title:       "The Future of %s: Predictions from Industry Leaders",
			description: "Exclusive insights from top %s executives and thought leaders on where the industry is headed and how to prepare for upcoming changes.",
			keywords:    []string{"future", "predictions", "industry leaders"},
		},
		{
			title:       "%s 101: A Beginner's Guide to Success",
			description: "Everything newcomers need to know about the %s field. This starter guide breaks down complex concepts into digestible, actionable information.",
			keywords:    []string{"beginners", "guide", "basics"},
		},
		{
			title:       "Case Study: How Company X Revolutionized Their %s Approach",
			description: "An in-depth analysis of how a leading organization transformed their %s strategy to achieve remarkable results and what you can learn from their journey.",
			keywords:    []string{"case study", "success story", "transformation"},
		},
	},
	model.ContentSocial: {
		{
			title:       "5 Viral %s Social Media Campaigns to Inspire Your Strategy",
			description: "Analysis of successful social media campaigns in the %s sector with key takeaways you can apply to your own content strategy.",
			keywords:    []string{"viral", "social media", "campaigns"},
		},
		{
			title:       "Behind-the-Scenes Look at Our %s Process",
			description: "Give your audience an exclusive glimpse into how your %s products or services come to life, building transparency and trust with your followers.",
			keywords:    []string{"behind the scenes", "process", "transparency"},
		},
		{
			title:       "Quick Tip Tuesday: %s Hack That Saves Time",
			description: "Share a valuable, easy-to-implement tip related to %s that your audience can put into action immediately.",
			keywords:    []string{"quick tip", "hack", "time-saving"},
		},
		{
			title:       "Poll: What's Your Biggest %s Challenge?",
			description: "Engage your audience by asking them to share their experiences and challenges with %s, creating conversation and providing insights for future content.",
			keywords:    []string{"poll", "engagement", "challenges"},
		},
		{
			title:       "%s Myth vs. Reality",
			description: "Debunk common misconceptions about %s with factual information, positioning your brand as a trusted authority in the field.",
			keywords:    []string{"myths", "misconceptions", "facts"},
		},
		{
			title:       "#ThrowbackThursday: How %s Has Evolved",
			description: "Compare past and present %s practices, highlighting innovation and progress while leveraging the popular #TBT hashtag.",
			keywords:    []string{"throwback", "evolution", "innovation"},
		},
	},
	model.ContentVideo: {
		{
			title:       "%s Explained in 60 Seconds",
			description: "A concise, visually engaging explanation of a complex %s concept that viewers can quickly understand and share with others.",
			keywords:    []string{"explainer", "short-form", "educational"},
		},
		{
			title:       "Day in the Life of a %s Professional",
			description: "Follow a typical day of someone working in %s, offering viewers insight into the career path and what the job really entails.",
			keywords:    []string{"day in the life", "career", "behind the scenes"},
		},
		{
			title:       "%s Product Review: Is It Worth the Investment?",
			description: "An honest, in-depth review of a popular %s product or service, helping viewers make informed purchasing decisions.",
			keywords:    []string{"review", "product", "recommendation"},
		},
		{
			title:       "3 %s Mistakes Everyone Makes (And How to Avoid Them)",
			description: "Identify common pitfalls in %s and provide practical advice on how to overcome them, positioning your brand as a helpful industry guide.",
			keywords:    []string{"mistakes", "tips", "advice"},
		},
		{
			title:       "%s Expert Interview Series: Insights from the Field",
			description: "Feature a conversation with a recognized %s authority, discussing trends, challenges, and opportunities in the field.",
			keywords:    []string{"interview", "expert", "insights"},
		},
		{
			title:       "How We Achieved Real Results in Our %s Strategy",
			description: "Share a success story about your %s approach, including the strategy, implementation, and measurable results that viewers can learn from.",
			keywords:    []string{"success story", "results", "strategy"},
		},
	},
	model.ContentNewsletter: {
		{
			title:       "This Month in %s: Top Stories You Need to Know",
			description: "A curated roundup of the most important %s news, trends, and developments from the past month that subscribers shouldn't miss.",
			keywords:    []string{"news roundup", "industry updates", "monthly digest"},
		},
		{
			title:       "%s Insider: Exclusive Tips and Resources",
			description: "Provide subscribers with privileged information, tools, and resources related to %s that aren't available elsewhere.",
			keywords:    []string{"exclusive", "insider", "resources"},
		},
		{
			title:       "%s Case Study: From Challenge to Success",
			description: "Detailed analysis of how a specific %s problem was solved, with lessons learned and actionable takeaways for subscribers.",
			keywords:    []string{"case study", "problem-solving", "success story"},
		},
		{
			title:       "New Research Reveals Surprising %s Trends",
			description: "Share original research or findings about %s, offering subscribers data-driven insights they can use to inform their own strategies.",
			keywords:    []string{"research", "data", "trends"},
		},
		{
			title:       "%s Q&A: Answering Your Most Asked Questions",
			description: "Address common queries about %s topics, providing valuable information based on subscriber input and industry expertise.",
			keywords:    []string{"Q&A", "questions", "answers"},
		},
		{
			title:       "%s Toolbox: Essential Resources for Professionals",
			description: "A carefully selected collection of %s tools, platforms, and resources to help subscribers improve their efficiency and results.",
			keywords:    []string{"tools", "resources", "productivity"},
		},
	},
}
