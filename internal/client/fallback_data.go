package client

import (
	"time"

	"portfolio_api/internal/model"
)

func fallbackProjects() []model.Project {
	return []model.Project{
		{ID: "1", Title: "Dashboard UI", Category: "UI Design", Image: "https://picsum.photos/400/300?random=101", Description: "A dashboard UI"},
		{ID: "2", Title: "E-commerce App", Category: "Web Templates", Image: "https://picsum.photos/400/300?random=102", Description: "Shop app"},
		{ID: "3", Title: "Brand Identity", Category: "Branding", Image: "https://picsum.photos/400/300?random=103", Description: "Brand identity"},
		{ID: "4", Title: "Mobile Banking", Category: "UI Design", Image: "https://picsum.photos/400/300?random=104", Description: "Finance app"},
		{ID: "5", Title: "Restaurant Logo", Category: "Logo", Image: "https://picsum.photos/400/300?random=105", Description: "Vector logo"},
		{ID: "6", Title: "Marketing Assets", Category: "Branding", Image: "https://picsum.photos/400/300?random=106", Description: "Social media kit"},
	}
}

func fallbackExperience() []model.ExperienceEntry {
	return []model.ExperienceEntry{
		{
			ID:          "edu1",
			Type:        model.ExperienceTypeEducation,
			Title:       "St. Paul’s University, Limuru",
			Role:        "Diploma in Business and Information Technology",
			Date:        "Nov 2024",
			Description: "Focus: Business operations, computer systems, information management, IT Fundamentals. Capstone Project: E-commerce website.",
		},
		{
			ID:          "edu2",
			Type:        model.ExperienceTypeEducation,
			Title:       "AWS re/Start",
			Role:        "AWS Certified Cloud Practitioner",
			Date:        "Aug 2024",
			Description: "Intensive cloud computing program covering security, architecture, and core services.",
		},
		{
			ID:          "edu3",
			Type:        model.ExperienceTypeEducation,
			Title:       "Ajira Digital",
			Role:        "Certificate in Data Analysis",
			Date:        "Jun 2024",
			Description: "Training in data processing, visualization, and spreadsheet management for decision making.",
		},
		{
			ID:          "edu4",
			Type:        model.ExperienceTypeEducation,
			Title:       "Ajira Digital",
			Role:        "Certificate in Virtual Assistance",
			Date:        "Jan 2023",
			Description: "Focused on digital productivity, remote support, and professional administrative workflows.",
		},
		{
			ID:          "work1",
			Type:        model.ExperienceTypeWork,
			Title:       "International School of Kenya (ISK)",
			Role:        "Innovation Studio Intern",
			Date:        "Sept 2025 – Ongoing",
			Description: "Assisting with hands-on lessons in Robotics (LEGO Mindstorms), Coding (Scratch, Python), and Product Design. Guiding students in 3D design using Tinkercad and Adobe Illustrator. Supporting web development lessons with HTML/CSS.",
		},
		{
			ID:          "work2",
			Type:        model.ExperienceTypeWork,
			Title:       "Children’s Garden Home and School",
			Role:        "Educational Technology Integrator",
			Date:        "Ongoing",
			Description: "Leading efforts to replace paper-based systems with technology. Training teachers on Google Workspace for Education (Docs, Sheets, Classroom) and delivering iPad-based lessons aligned with the CBC curriculum.",
		},
		{
			ID:          "work3",
			Type:        model.ExperienceTypeWork,
			Title:       "International School of Kenya (ISK)",
			Role:        "IT Intern",
			Date:        "Jan 2025 – May 2025",
			Description: "Provided technical support at the IT helpdesk, repaired Chromebooks/iMacs, and managed device inventory using AppSheet. Collaborated on tech integration projects with the ISK IT Director.",
		},
		{
			ID:          "work4",
			Type:        model.ExperienceTypeWork,
			Title:       "International School of Kenya (ISK)",
			Role:        "Casual Summer IT Support",
			Date:        "Jun 2025 – Jul 2025",
			Description: "Prepared Chromebooks for the new term through cleaning, updating, and testing features. Recorded device inventory in Google Sheets and managed cable organization for device carts.",
		},
		{
			ID:          "work5",
			Type:        model.ExperienceTypeWork,
			Title:       "Private Family Engagement",
			Role:        "Private Elementary Tutor (Home School)",
			Date:        "Feb 2024 – Jul 2024",
			Description: "Delivered personalized lessons across Math, English, Literature, Geography, Coding, and Computer studies. Developed engaging lesson routines and literacy-building activities.",
		},
		{
			ID:          "work6",
			Type:        model.ExperienceTypeWork,
			Title:       "Nione Initiative Foundation, Kitisuru",
			Role:        "Volunteer Special Needs Teaching Assistant",
			Date:        "Jan 2022 – Apr 2022",
			Description: "Supported classroom management and assisted special needs students with reading and routines. Helped promote a nurturing and inclusive learning environment.",
		},
	}
}

func fallbackMessages(now time.Time) []model.Message {
	return []model.Message{
		{ID: "1", FullName: "John Doe", Email: "john@example.com", Subject: "Inquiry", Message: "Hello, I would like to hire you.", CreatedAt: now},
	}
}
