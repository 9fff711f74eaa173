package service

import "github.com/Naveen122004/portfolio-service/internal/domain"

var siteProfile = domain.Profile{
	Name:     "Naveen Magadum",
	Headline: "Full Stack Developer & Software Engineer",
	Email:    "naveensm288@gmail.com",
	Phone:    "+91 8951267055",
	Location: "Belagavi, India",
	Github:   "https://github.com/Naveen122004",
	LinkedIn: "https://www.linkedin.com/in/naveen-magadum",
}

var projectsData = []domain.Project{
	{
		ID:              1,
		Title:           "Hospital Management System",
		Description:     "A comprehensive system to manage patient details, doctor information, billing, appointments, rooms, and medical reports.",
		FullDescription: "A complete hospital management solution that streamlines operations and improves patient care through digital transformation.",
		Technologies:    []string{"HTML", "CSS", "JavaScript"},
		Features: []string{
			"Patient registration and records management",
			"Doctor scheduling and appointment booking",
			"Automated billing and payment processing",
			"Room allocation and availability tracking",
			"Medical reports generation and storage",
			"Prescription management system",
		},
		Rating:    4.8,
		Reviews:   24,
		DemoURL:   "https://hospital-management-demo.example.com",
		GithubURL: "https://github.com/naveenmagadum/hospital-management",
	},
	{
		ID:              2,
		Title:           "Smart Agriculture Android App",
		Description:     "Provides weather-based farming suggestions, market price updates, government schemes, and water management solutions.",
		FullDescription: "An intelligent farming assistant that helps farmers make data-driven decisions for better crop yields and resource management.",
		Technologies:    []string{"React JS", "Python", "MongoDB", "JavaScript"},
		Features: []string{
			"Real-time weather forecasts and alerts",
			"Crop-specific farming recommendations",
			"Live market price tracking",
			"Government schemes and subsidies information",
			"Water management and irrigation planning",
			"Multi-language support for accessibility",
		},
		Rating:    4.6,
		Reviews:   18,
		DemoURL:   "https://play.google.com/store/apps/details?id=com.smartagriculture",
		GithubURL: "https://github.com/naveenmagadum/smart-agriculture",
	},
	{
		ID:              3,
		Title:           "CroFiPy - Crop Disease Prediction",
		Description:     "ML-based system for crop disease detection, fertilizer prediction, and crop recommendation using advanced algorithms.",
		FullDescription: "An AI-powered agricultural solution that helps farmers identify crop diseases early and optimize fertilizer usage for better yields.",
		Technologies:    []string{"HTML", "CSS", "JavaScript", "Python", "ML"},
		Features: []string{
			"Image-based disease detection using CNN",
			"Fertilizer recommendation based on soil analysis",
			"Crop recommendation system using ML",
			"Real-time prediction and analysis",
			"Detailed disease treatment guidelines",
			"Historical data tracking and analytics",
		},
		Rating:    4.9,
		Reviews:   32,
		DemoURL:   "https://crofipy-demo.example.com",
		GithubURL: "https://github.com/naveenmagadum/crofipy",
	},
	{
		ID:              4,
		Title:           "Medicinal Plant Identification",
		Description:     "AI-powered system for identifying medicinal plants using image recognition with Gemini AI integration for accurate plant classification.",
		FullDescription: "An intelligent medicinal plant identification system that leverages Google's Gemini AI to help users identify medicinal plants through image recognition, providing detailed information about their properties and uses.",
		Technologies:    []string{"React JS", "Python", "TypeScript", "Gemini", "HTML", "CSS", "JavaScript"},
		Features: []string{
			"AI-powered plant identification using Gemini",
			"Comprehensive medicinal plant database",
			"Image-based recognition and classification",
			"Detailed plant properties and usage information",
			"Multi-language support for accessibility",
			"Historical search and identification tracking",
		},
		Rating:    4.7,
		Reviews:   28,
		DemoURL:   "https://medicinal-plant-demo.example.com",
		GithubURL: "https://github.com/naveenmagadum/medicinal-plant-identification",
	},
	{
		ID:              5,
		Title:           "Care-Vision",
		Description:     "Healthcare vision analysis system with Streamlit interface for medical image processing and diagnostic assistance through API integration.",
		FullDescription: "A comprehensive healthcare vision system that combines medical imaging technology with AI-powered analysis to assist healthcare professionals in diagnostic processes.",
		Technologies:    []string{"HTML", "CSS", "JavaScript", "Python", "API Integration", "Streamlit"},
		Features: []string{
			"Medical image processing and analysis",
			"Streamlit-based interactive interface",
			"RESTful API integration for data exchange",
			"Real-time diagnostic assistance",
			"Secure patient data handling",
			"Export and reporting capabilities",
		},
		Rating:    4.5,
		Reviews:   21,
		DemoURL:   "https://care-vision-demo.example.com",
		GithubURL: "https://github.com/naveenmagadum/care-vision",
	},
}

var blogPostsData = []domain.BlogPost{
	{
		ID:       1,
		Title:    "Building Scalable Hospital Management Systems",
		Excerpt:  "Learn how to design and implement a comprehensive hospital management system using React, Node.js, and MongoDB. This article covers architecture decisions, security considerations, and best practices.",
		Date:     "2024-03-15",
		ReadTime: "8 min read",
		Category: "Full Stack Development",
		Tags:     []string{"React", "Node.js", "MongoDB"},
	},
	{
		ID:       2,
		Title:    "Machine Learning for Agriculture: Crop Disease Detection",
		Excerpt:  "Explore how to build an ML-based crop disease detection system using TensorFlow and Python. From data collection to model deployment, this guide covers the entire pipeline.",
		Date:     "2024-02-28",
		ReadTime: "12 min read",
		Category: "Machine Learning",
		Tags:     []string{"Python", "TensorFlow", "AI"},
	},
	{
		ID:       3,
		Title:    "Creating Weather-Based Smart Farming Apps",
		Excerpt:  "Discover the process of building Android applications that provide real-time weather data and farming recommendations to help farmers make data-driven decisions.",
		Date:     "2024-02-10",
		ReadTime: "10 min read",
		Category: "Mobile Development",
		Tags:     []string{"Android", "Java", "Firebase"},
	},
}

var educationData = []domain.Education{
	{
		Degree:      "Bachelor of Technology in Computer Science",
		Institution: "Maratha Mandal Engineering College Belagavi",
		Years:       "2022 - 2026",
	},
	{
		Degree:      "Pre-University College (PUC)",
		Institution: "J A PU College Athani",
		Years:       "2020 - 2022",
	},
	{
		Degree:      "Secondary School Education",
		Institution: "PVS School Ainapur",
		Years:       "2018 - 2020",
	},
}

var skillsData = []domain.SkillCategory{
	{
		Title: "Technical Skills",
		Skills: []domain.Skill{
			{Name: "React & Next.js", Level: 90},
			{Name: "Node.js & Express", Level: 85},
			{Name: "Python & Django", Level: 80},
			{Name: "Database Management", Level: 85},
			{Name: "Machine Learning", Level: 75},
			{Name: "Android Development", Level: 80},
		},
	},
	{
		Title: "Programming Languages",
		Skills: []domain.Skill{
			{Name: "JavaScript/TypeScript", Level: 90},
			{Name: "Python", Level: 85},
			{Name: "Java", Level: 80},
			{Name: "SQL", Level: 85},
		},
	},
	{
		Title: "Tools & Technologies",
		Skills: []domain.Skill{
			{Name: "Git & GitHub", Level: 90},
			{Name: "Docker", Level: 75},
			{Name: "AWS", Level: 70},
			{Name: "VS Code", Level: 95},
		},
	},
	{
		Title: "Soft Skills",
		Skills: []domain.Skill{
			{Name: "Problem Solving", Level: 90},
			{Name: "Team Collaboration", Level: 85},
			{Name: "Communication", Level: 85},
			{Name: "Time Management", Level: 80},
		},
	},
}
