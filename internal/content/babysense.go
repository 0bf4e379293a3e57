package content

// Default returns the AI BabySense page copy.
func Default() Site {
	getStarted := Button{Label: "Get Started Free", Href: "#pricing", Primary: true}
	watchDemo := Button{Label: "Watch Demo", Href: "#how-it-works"}

	return Site{
		Brand:       Brand,
		Title:       "AI BabySense - Understand Your Baby's Cries with AI",
		Description: "Smart parenting assistant that decodes cries, tracks routines, and provides personalized care tips.",
		Nav: []NavItem{
			{Label: "Features", Anchor: "features"},
			{Label: "How It Works", Anchor: "how-it-works"},
			{Label: "Pricing", Anchor: "pricing"},
			{Label: "FAQ", Anchor: "faq"},
		},
		HeaderCTAs: []Button{watchDemo, getStarted},
		Hero: Hero{
			Badge:     "Now with AI-powered insights",
			Headline:  "Understand Your Baby's",
			Highlight: "Cries with AI",
			Subline:   "Smart parenting assistant that decodes cries, tracks routines, and provides personalized care tips.",
			Primary:   getStarted,
			Secondary: watchDemo,
			ImageAlt:  "AI BabySense App Preview",
		},
		Steps: SectionIntro{
			ID:    "how-it-works",
			Title: "How It Works",
			Lead:  "Three simple steps to better understand your baby's needs",
		},
		StepCards: []Step{
			{Number: "1", Icon: "mic", Title: "Listen", Description: "App records baby's cry via mic with advanced audio processing", Accent: "blue"},
			{Number: "2", Icon: "brain", Title: "Understand", Description: "AI predicts reason (hungry, tired, diaper, discomfort) with 94% accuracy", Accent: "purple"},
			{Number: "3", Icon: "lightbulb", Title: "Guide", Description: "Smart tips & reminders personalized to your baby's patterns", Accent: "amber"},
		},
		Features: SectionIntro{
			ID:    "features",
			Title: "Key Features",
			Lead:  "Everything you need to understand and care for your baby",
		},
		FeatureCards: []Feature{
			{Icon: "brain", Title: "Cry Analyzer", Description: "Know why your baby cries instantly with AI-powered analysis", Accent: "purple"},
			{Icon: "moon", Title: "Sleep & Feeding Tracker", Description: "Smart logs & reminders to maintain healthy routines", Accent: "blue"},
			{Icon: "baby", Title: "Diaper Log", Description: "Stay on top of changes with intelligent tracking", Accent: "green"},
			{Icon: "watch", Title: "Wearable Integration", Description: "Monitor heart rate, sleep, temperature seamlessly", Accent: "orange"},
		},
		Testimonials: SectionIntro{
			ID:    "testimonials",
			Title: "What Parents Say",
			Lead:  "Join thousands of happy parents",
		},
		Quotes: []Testimonial{
			{Quote: "AI BabySense gave me peace of mind at 3 AM. Lifesaver!", Author: "Sarah, new mom", Rating: 5},
			{Quote: "Finally understand what my baby needs. The cry analysis is incredibly accurate.", Author: "Michael, dad of twins", Rating: 5},
			{Quote: "The sleep tracking helped us establish a routine. Our whole family sleeps better now.", Author: "Emma, mother of 2", Rating: 5},
		},
		Pricing: SectionIntro{
			ID:    "pricing",
			Title: "Simple Pricing",
			Lead:  "Choose the plan that works for your family",
		},
		Tiers: []PricingTier{
			{
				Name:        "Free",
				Description: "Perfect for getting started",
				Price:       "$0",
				Period:      "/month",
				Features: []string{
					"Basic sleep & feeding tracking",
					"Simple cry logging",
					"Basic care reminders",
					"Community support",
				},
				Button: Button{Label: "Get Started Free", Href: "#pricing"},
			},
			{
				Name:        "Premium",
				Description: "Full AI-powered experience",
				Price:       "$9.99",
				Period:      "/month",
				Features: []string{
					"AI cry analysis & predictions",
					"Personalized care tips",
					"Wearable device integration",
					"Advanced sleep insights",
					"Priority support",
					"Family sharing",
				},
				Button:      Button{Label: "Start Free Trial", Href: "#pricing", Primary: true},
				Badge:       "Most Popular",
				Highlighted: true,
			},
		},
		FAQ: SectionIntro{
			ID:    "faq",
			Title: "Frequently Asked Questions",
			Lead:  "Everything you need to know about AI BabySense",
		},
		Questions: []FAQEntry{
			{
				Question: "How accurate is the AI cry analysis?",
				Answer:   "Our AI has been trained on thousands of baby cries and achieves 94% accuracy in identifying the reason behind your baby's cries. The system continuously learns and improves with use.",
			},
			{
				Question: "Is my baby's data safe and private?",
				Answer:   "Absolutely. We use end-to-end encryption and never share your personal data. All audio recordings are processed locally on your device when possible, and any cloud processing is fully anonymized.",
			},
			{
				Question: "What devices are compatible?",
				Answer:   "AI BabySense works on iOS and Android smartphones and tablets. We also integrate with popular baby monitors and wearable devices like Owlet and Nanit.",
			},
			{
				Question: "Can I use it for multiple babies?",
				Answer:   "Yes! Premium subscribers can create profiles for multiple babies and track each one individually. The AI learns each baby's unique patterns.",
			},
			{
				Question: "What if the AI gets it wrong?",
				Answer:   "You can always provide feedback to help the AI learn your baby's specific patterns. The system becomes more accurate over time as it learns your baby's unique cues.",
			},
		},
		CTA: CTA{
			Headline: "Parent smarter, not harder.",
			Body:     "Join thousands of parents who've found peace of mind with AI BabySense. Start your free trial today.",
			Button:   Button{Label: "Get AI BabySense Today", Href: "#pricing", Primary: true},
		},
		Footer: Footer{
			Blurb: "The smart parenting assistant that helps you understand your baby's needs with AI-powered insights.",
			Social: []SocialLink{
				{Network: "Twitter", Href: "#"},
				{Network: "Instagram", Href: "#"},
				{Network: "LinkedIn", Href: "#"},
			},
			Columns: []FooterColumn{
				{Title: "Product", Links: []NavItem{
					{Label: "Features", Anchor: "features"},
					{Label: "Pricing", Anchor: "pricing"},
					{Label: "FAQ", Anchor: "faq"},
					{Label: "Download", Anchor: "download"},
				}},
				{Title: "Company", Links: []NavItem{
					{Label: "About"},
					{Label: "Privacy"},
					{Label: "Terms"},
					{Label: "Contact"},
				}},
			},
			Copyright: "© 2025 AI BabySense. All rights reserved. Made with ❤️ for parents everywhere.",
		},
	}
}
