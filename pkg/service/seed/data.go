package seed

import "github.com/anzhiyu-c/fintaa-site/pkg/domain/model"

const svgPrefix = `<svg class="w-8 h-8 text-black" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="`
const svgSuffix = `"></path></svg>`

func icon(d string) string { return svgPrefix + d + svgSuffix }

func homePage() *model.HomePage {
	p := model.NewHomePage()
	p.HeroSubtitle = "TECH HOUSE"
	p.HeroDescription = "<p>Pakistan's Premier Software Development Company - Specializing in cutting-edge technology solutions, from web development to AI agents, we deliver excellence in every project.</p>"
	p.AboutDescription = "<p>Registered in Pakistan as a sole proprietorship, Fintaa Software House is your trusted partner in digital transformation. We specialize in solving complex technical challenges with innovative solutions.</p>"
	p.AboutAdditionalText = "<p>Our expertise spans across multiple technology stacks and frameworks, ensuring we can handle any project from simple WordPress sites to complex AI-powered applications.</p>"
	p.Services = []model.ServiceItem{
		{
			Title:       "Web Development",
			Description: "Full-stack web solutions using modern frameworks like React, Node.js, Python Django, and Ruby on Rails.",
			IconSVG:     icon("M10 20l4-16m4 4l4 4-4 4M6 16l-4-4 4-4"),
			Feature1:    "Responsive Design",
			Feature2:    "WordPress & Shopify",
			Feature3:    "Custom Web Applications",
		},
		{
			Title:       "Mobile App Development",
			Description: "Native and cross-platform mobile applications for iOS and Android with cutting-edge features.",
			IconSVG:     icon("M12 18h.01M8 21h8a1 1 0 001-1V4a1 1 0 00-1-1H8a1 1 0 00-1 1v16a1 1 0 001 1z"),
			Feature1:    "React Native",
			Feature2:    "Flutter Development",
			Feature3:    "iOS & Android Native",
		},
		{
			Title:       "AI & Automation",
			Description: "Intelligent automation solutions, chatbots, and AI agents to streamline your business processes.",
			IconSVG:     icon("M9.75 17L9 20l-1 1h8l-1-1-.75-3M3 13h18M5 17h14a2 2 0 002-2V5a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"),
			Feature1:    "Custom AI Agents",
			Feature2:    "Chatbot Development",
			Feature3:    "Process Automation",
		},
		{
			Title:       "Cybersecurity",
			Description: "Comprehensive security solutions to protect your digital assets and infrastructure.",
			IconSVG:     icon("M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z"),
			Feature1:    "Security Audits",
			Feature2:    "Network Security",
			Feature3:    "Penetration Testing",
		},
		{
			Title:       "Digital Marketing",
			Description: "Strategic digital marketing solutions to boost your online presence and drive growth.",
			IconSVG:     icon("M13 7h8m0 0v8m0-8l-8 8-4-4-6 6"),
			Feature1:    "SEO Optimization",
			Feature2:    "Social Media Marketing",
			Feature3:    "Content Strategy",
		},
		{
			Title:       "Call Center & Support",
			Description: "Professional call center services and customer support solutions for your business.",
			IconSVG:     icon("M3 5a2 2 0 012-2h3.28a1 1 0 01.948.684l1.498 4.493a1 1 0 01-.502 1.21l-2.257 1.13a11.042 11.042 0 005.516 5.516l1.13-2.257a1 1 0 011.21-.502l4.493 1.498a1 1 0 01.684.949V19a2 2 0 01-2 2h-1C9.716 21 3 14.284 3 6V5z"),
			Feature1:    "24/7 Support",
			Feature2:    "Multi-language Support",
			Feature3:    "CRM Integration",
		},
	}
	for _, text := range []string{
		"Registered Software House in Pakistan",
		"Expert Team of Developers & Engineers",
		"100+ Successful Projects Delivered",
		"24/7 Customer Support",
		"Agile Development Methodology",
		"Quality Assurance & Testing",
	} {
		p.AboutFeatures = append(p.AboutFeatures, model.AboutFeature{FeatureText: text})
	}
	return p
}

func aboutPage() *model.AboutPage {
	p := model.NewAboutPage()
	p.HeroTitle = "About Fintaa Software House"
	p.HeroSubtitle = "Your Trusted Technology Partner"
	p.HeroDescription = "<p>Empowering businesses through innovative technology solutions since 2019. We are a registered software house in Pakistan dedicated to delivering excellence in every project.</p>"
	p.StoryContent = "<p>Founded in 2019, Fintaa Software House emerged from a passion for technology and a vision to transform businesses through innovative digital solutions. What started as a small team of dedicated developers has grown into Pakistan's premier software development company.</p><p>Our journey began with a simple mission: to bridge the gap between complex technology and business needs. Over the years, we've successfully delivered over 100 projects, helping businesses of all sizes achieve their digital transformation goals.</p>"
	p.MissionContent = "<p>To empower businesses worldwide by delivering cutting-edge technology solutions that drive growth, efficiency, and innovation. We strive to be the trusted partner that transforms ideas into digital reality.</p>"
	p.VisionContent = "<p>To become the leading software development company in Pakistan and expand globally, known for our technical excellence, innovative solutions, and commitment to client success.</p>"
	p.Values = []model.CompanyValue{
		{Title: "Innovation", Description: "We embrace cutting-edge technologies and creative solutions to solve complex challenges.", IconName: "lightbulb"},
		{Title: "Quality", Description: "We maintain the highest standards in code quality, testing, and project delivery.", IconName: "verified"},
		{Title: "Transparency", Description: "We believe in open communication and keeping our clients informed throughout the project.", IconName: "visibility"},
		{Title: "Reliability", Description: "Our clients can count on us to deliver projects on time and within budget.", IconName: "schedule"},
		{Title: "Partnership", Description: "We work as an extension of your team, understanding your business goals and challenges.", IconName: "handshake"},
		{Title: "Growth", Description: "We are committed to continuous learning and helping our clients scale their businesses.", IconName: "trending_up"},
	}
	p.TeamMembers = []model.TeamMember{
		{
			Name:        "Khalid Zaheer",
			Position:    "CEO & Lead Developer",
			Bio:         "Experienced full-stack developer with expertise in modern web technologies and AI solutions.",
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop&crop=face",
			LinkedinURL: "https://linkedin.com/in/khalidzaheer",
			GithubURL:   "https://github.com/khalidzaheer",
		},
		{
			Name:        "Sarah Ahmed",
			Position:    "UI/UX Designer",
			Bio:         "Creative designer focused on user-centered design and modern interface solutions.",
			ImageURL:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=300&h=300&fit=crop&crop=face",
			LinkedinURL: "https://linkedin.com/in/sarahahmed",
		},
		{
			Name:      "Muhammad Ali",
			Position:  "Mobile App Developer",
			Bio:       "Specialist in React Native and Flutter development with 5+ years of experience.",
			ImageURL:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&fit=crop&crop=face",
			GithubURL: "https://github.com/muhammadali",
		},
	}
	return p
}

func contactPage() *model.ContactPage {
	p := model.NewContactPage()
	p.HeroDescription = "<p>Ready to transform your ideas into reality? Let's discuss your next project and explore how we can help your business grow through innovative technology solutions.</p>"
	p.OfficeAddress = "Lahore, Punjab\nPakistan"
	p.EmailAddress = "info@Fintaa.pk"
	p.PhoneNumber = "+92 300 1234567"
	p.BusinessHours = "Monday - Friday: 9:00 AM - 6:00 PM\nSaturday: 10:00 AM - 4:00 PM\nSunday: Closed\n24/7 Emergency Support Available"
	p.ContactMethods = []model.ContactMethod{
		{Title: "WhatsApp", Description: "+92 300 1234567", Link: "https://wa.me/923001234567", IconName: "chat"},
		{Title: "Skype", Description: "Fintaa.software", Link: "skype:Fintaa.software?chat", IconName: "video_call"},
		{Title: "LinkedIn", Description: "Follow us on LinkedIn", Link: "https://linkedin.com/company/Fintaa-software", IconName: "business"},
	}
	return p
}

func servicesPage() *model.ServicesPage {
	p := model.NewServicesPage()
	p.HeroDescription = "<p>We offer comprehensive software development services to transform your ideas into reality. From web applications to AI solutions, we deliver excellence in every project.</p>"
	p.ServiceItems = []model.ServicePageItem{
		{
			Title:       "Web Development",
			Description: "<p>Custom web applications built with modern frameworks and technologies. Responsive, fast, and user-friendly designs.</p>",
			Icon:        "fas fa-code",
			Features:    "<ul><li>React, Vue.js, Django development</li><li>E-commerce solutions</li><li>CMS development</li><li>API integration</li></ul>",
		},
		{
			Title:       "Mobile App Development",
			Description: "<p>Native and cross-platform mobile applications for iOS and Android with seamless user experiences.</p>",
			Icon:        "fas fa-mobile-alt",
			Features:    "<ul><li>Flutter & React Native</li><li>Native iOS & Android</li><li>App Store optimization</li><li>Push notifications</li></ul>",
		},
		{
			Title:       "AI & Machine Learning",
			Description: "<p>Cutting-edge AI solutions including chatbots, recommendation systems, and data analytics platforms.</p>",
			Icon:        "fas fa-brain",
			Features:    "<ul><li>Natural Language Processing</li><li>Computer Vision</li><li>Predictive Analytics</li><li>Custom AI agents</li></ul>",
		},
		{
			Title:       "Cloud Solutions",
			Description: "<p>Scalable cloud infrastructure and deployment solutions for modern applications and data management.</p>",
			Icon:        "fas fa-cloud",
			Features:    "<ul><li>AWS, Azure, GCP deployment</li><li>Docker & Kubernetes</li><li>CI/CD pipelines</li><li>Database management</li></ul>",
		},
		{
			Title:       "UI/UX Design",
			Description: "<p>Beautiful, intuitive designs that enhance user experience and drive engagement across all platforms.</p>",
			Icon:        "fas fa-paint-brush",
			Features:    "<ul><li>User research & testing</li><li>Wireframing & prototyping</li><li>Brand identity design</li><li>Responsive design</li></ul>",
		},
		{
			Title:       "Digital Consulting",
			Description: "<p>Strategic technology consulting to help businesses leverage digital transformation for growth.</p>",
			Icon:        "fas fa-lightbulb",
			Features:    "<ul><li>Technology audit</li><li>Digital strategy planning</li><li>Process optimization</li><li>Innovation roadmaps</li></ul>",
		},
	}
	return p
}

func teamPage() *model.TeamPage {
	p := model.NewTeamPage()
	p.HeroTitle = "Meet Our Team"
	p.HeroDescription = "<p>Our talented team of developers, designers, and strategists work together to create exceptional software solutions that drive business success.</p>"
	p.TeamMembers = []model.TeamPageMember{
		{
			Name:     "Khalid Zaheer",
			Position: "Founder & Lead Developer",
			Bio:      "<p>Full-stack developer with expertise in modern web technologies and AI development. Passionate about creating innovative solutions that solve real-world problems.</p>",
			Email:    "wasay@Fintaa.pk",
			Linkedin: "https://linkedin.com/in/khalidzaheer",
			Github:   "https://github.com/khalidzaheer",
			Skills:   "Python, Django, React, AI/ML, Cloud Computing",
		},
		{
			Name:     "Sarah Johnson",
			Position: "Senior Frontend Developer",
			Bio:      "<p>Creative frontend developer specializing in React and Vue.js. Expert in creating beautiful, responsive user interfaces with perfect attention to detail.</p>",
			Email:    "sarah@Fintaa.pk",
			Linkedin: "https://linkedin.com/in/sarahjohnson",
			Github:   "https://github.com/sarahjohnson",
			Skills:   "React, Vue.js, TypeScript, CSS, UI/UX Design",
		},
		{
			Name:     "Ahmed Hassan",
			Position: "Backend Developer",
			Bio:      "<p>Experienced backend developer with strong expertise in Python, Node.js, and database design. Focuses on scalable architecture and API development.</p>",
			Email:    "ahmed@Fintaa.pk",
			Linkedin: "https://linkedin.com/in/ahmedhassan",
			Github:   "https://github.com/ahmedhassan",
			Skills:   "Python, Node.js, PostgreSQL, MongoDB, Docker",
		},
		{
			Name:     "Emily Chen",
			Position: "UI/UX Designer",
			Bio:      "<p>Creative designer passionate about user-centered design. Specializes in creating intuitive interfaces that enhance user experience and drive engagement.</p>",
			Email:    "emily@Fintaa.pk",
			Linkedin: "https://linkedin.com/in/emilychen",
			Skills:   "Figma, Adobe XD, User Research, Prototyping, Brand Design",
		},
	}
	return p
}

func blogIndexPage() *model.BlogIndexPage {
	p := model.NewBlogIndexPage()
	p.HeroTitle = "Latest Insights"
	p.HeroDescription = "<p>Stay updated with the latest in technology, development insights, and industry trends. Our team shares knowledge and experiences from the world of software development.</p>"
	return p
}

func samplePost(today model.Date) *model.BlogPost {
	p := model.NewBlogPost()
	p.Excerpt = "Explore the latest trends and technologies shaping the future of web development, from AI integration to new frameworks."
	p.PublishDate = today
	p.Tags = "web development, trends, 2025, technology"
	p.Content = []model.ContentBlock{
		{Type: model.BlockHeading, Text: "Introduction"},
		{Type: model.BlockParagraph, HTML: "<p>The web development landscape continues to evolve rapidly, with new technologies and frameworks emerging every year. In this article, we explore the key trends that will shape web development in 2025.</p>"},
		{Type: model.BlockHeading, Text: "Key Trends"},
		{Type: model.BlockList, Items: []string{
			"AI-powered development tools",
			"WebAssembly adoption",
			"Progressive Web Apps",
			"Serverless architecture",
			"Low-code/no-code platforms",
		}},
	}
	return p
}

func portfolioIndexPage() *model.PortfolioIndexPage {
	p := model.NewPortfolioIndexPage()
	p.HeroDescription = "<p>Explore our successful projects and see how we've helped businesses transform their digital presence with innovative technology solutions.</p>"
	return p
}

type seededProject struct {
	title   string
	slug    string
	content *model.ProjectPage
}

func project(today model.Date, f model.ProjectFields) *model.ProjectPage {
	p := model.NewProjectPage()
	f.CompletionDate = today
	p.ProjectFields = f
	return p
}

func sampleProjects(today model.Date) []seededProject {
	return []seededProject{
		{"E-Commerce Platform", "ecommerce-platform", project(today, model.ProjectFields{
			ProjectTitle:     "Modern E-Commerce Platform",
			ProjectSubtitle:  "Full-Stack Development",
			ClientName:       "TechRetail Co.",
			ProjectOverview:  "<p>A comprehensive e-commerce solution built with React, Node.js, and PostgreSQL. Features include real-time inventory management, secure payment processing, and advanced analytics dashboard.</p>",
			ProjectChallenge: "<p>The client needed a scalable e-commerce platform that could handle high traffic volumes while providing excellent user experience across all devices.</p>",
			ProjectSolution:  "<p>We implemented a modern microservices architecture with React frontend, Node.js backend, and PostgreSQL database. Added real-time features using WebSockets and integrated multiple payment gateways.</p>",
			ProjectResults:   "<p>Achieved 40% increase in conversion rates, 60% improvement in page load times, and successfully handled Black Friday traffic with zero downtime.</p>",
			ProjectDuration:  "4 months",
			ProjectTeamSize:  "5 developers",
			FeaturedImageURL: "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=600&h=400&fit=crop",
		})},
		{"AI Chatbot System", "ai-chatbot-system", project(today, model.ProjectFields{
			ProjectTitle:     "Intelligent Customer Support Bot",
			ProjectSubtitle:  "AI & Machine Learning",
			ClientName:       "ServicePro Ltd.",
			ProjectOverview:  "<p>An advanced AI-powered chatbot system using natural language processing to provide 24/7 customer support with high accuracy and customer satisfaction.</p>",
			ProjectChallenge: "<p>The client was struggling with high customer support costs and long response times, especially during peak hours and weekends.</p>",
			ProjectSolution:  "<p>Developed an intelligent chatbot using OpenAI GPT models, integrated with the client's CRM system, and implemented sentiment analysis for escalation to human agents when needed.</p>",
			ProjectResults:   "<p>Reduced customer support costs by 70%, improved response time to under 30 seconds, and achieved 85% customer satisfaction rate.</p>",
			ProjectDuration:  "3 months",
			ProjectTeamSize:  "3 developers",
			FeaturedImageURL: "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?w=600&h=400&fit=crop",
		})},
		{"Mobile Banking App", "mobile-banking-app", project(today, model.ProjectFields{
			ProjectTitle:     "Secure Mobile Banking Application",
			ProjectSubtitle:  "Mobile Development",
			ClientName:       "SecureBank",
			ProjectOverview:  "<p>A comprehensive mobile banking application built with React Native, featuring biometric authentication, real-time transactions, and advanced security measures.</p>",
			ProjectChallenge: "<p>Creating a secure, user-friendly mobile banking experience that meets strict financial regulations while providing modern features customers expect.</p>",
			ProjectSolution:  "<p>Implemented end-to-end encryption, biometric authentication, real-time fraud detection, and intuitive UI/UX design following banking compliance standards.</p>",
			ProjectResults:   "<p>Increased mobile engagement by 300%, reduced transaction processing time by 50%, and achieved 99.9% uptime with zero security incidents.</p>",
			ProjectDuration:  "6 months",
			ProjectTeamSize:  "7 developers",
			FeaturedImageURL: "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=600&h=400&fit=crop",
		})},
	}
}

func sampleSubmissions() []*model.ContactSubmission {
	return []*model.ContactSubmission{
		{
			Name:     "John Smith",
			Email:    "john.smith@example.com",
			Phone:    "+1 555 0123",
			Company:  "Tech Innovations Inc.",
			Service:  "web_development",
			Budget:   "15k_50k",
			Timeline: "3_months",
			Message:  "We need a modern e-commerce website with payment integration and inventory management.",
		},
		{
			Name:        "Maria Garcia",
			Email:       "maria.garcia@startup.com",
			Phone:       "+1 555 0456",
			Company:     "StartupXYZ",
			Service:     "mobile_app_development",
			Budget:      "5k_15k",
			Timeline:    "6_months",
			Message:     "Looking for a mobile app for our food delivery service. Need both iOS and Android versions.",
			IsResponded: true,
		},
		{
			Name:     "Ahmed Hassan",
			Email:    "ahmed@techsolutions.ae",
			Company:  "Tech Solutions UAE",
			Service:  "ai_automation",
			Budget:   "50k_plus",
			Timeline: "flexible",
			Message:  "Interested in implementing AI chatbot and automation solutions for our customer service.",
		},
	}
}

func simpleSubmissions() []*model.ContactSubmission {
	return []*model.ContactSubmission{
		{
			Name:     "John Smith",
			Email:    "john@example.com",
			Phone:    "+92-300-1234567",
			Company:  "Smith Industries",
			Message:  "I need a modern e-commerce website for my business.",
			Service:  "web_development",
			Budget:   "5k_15k",
			Timeline: "3_months",
		},
		{
			Name:        "Sarah Johnson",
			Email:       "sarah@techstartup.com",
			Phone:       "+92-321-9876543",
			Company:     "Tech Startup Co",
			Message:     "Looking for a React Native mobile app for our startup.",
			Service:     "mobile_app_development",
			Budget:      "15k_50k",
			Timeline:    "6_months",
			IsResponded: true,
			Notes:       "Called and discussed requirements. Proposal sent.",
		},
		{
			Name:     "Ahmed Ali",
			Email:    "ahmed@business.pk",
			Phone:    "+92-333-5555555",
			Company:  "Business Solutions Ltd",
			Message:  "Want to integrate AI chatbot into our existing system.",
			Service:  "ai_automation",
			Budget:   "50k_plus",
			Timeline: "flexible",
		},
	}
}
