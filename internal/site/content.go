package site

import "github.com/samarpantrust/outreach/internal/domain"

type stat struct{ Label, Value string }

type program struct {
	Title       string
	Description string
	Impact      []string
	Locations   string
}

type update struct{ Date, Title, Excerpt string }

type titled struct{ Title, Description string }

type person struct{ Name, Role, Bio string }

type channel struct{ Title, Content, Link string }

type impactExample struct{ Amount, Impact string }

type faq struct{ Question, Answer string }

const officeAddress = "Chhaperwa, Sandh, Barkagaon, Hazaribagh, Jharkhand 825311"

var channels = []channel{
	{Title: "Email", Content: "samarpantrust2@gmail.com", Link: "mailto:samarpantrust2@gmail.com"},
	{Title: "Contact", Content: "7979882539", Link: "tel:7979882539"},
	{Title: "WhatsApp", Content: "8651677735", Link: "https://wa.me/918651677735"},
	{Title: "Office", Content: "9162667748", Link: "tel:9162667748"},
	{Title: "Address", Content: officeAddress},
}

var homeStats = []stat{
	{Label: "Lives Impacted", Value: "50,000+"},
	{Label: "States Served", Value: "15"},
	{Label: "Volunteers", Value: "2,500+"},
	{Label: "Projects", Value: "120+"},
}

var featuredPrograms = []program{
	{Title: "Education for All", Description: "Providing quality education and learning resources to underserved communities.", Impact: []string{"15,000 students supported"}},
	{Title: "Healthcare Access", Description: "Delivering essential healthcare services and medical supplies to remote areas.", Impact: []string{"25,000 patients treated"}},
	{Title: "Clean Water Initiative", Description: "Building sustainable water infrastructure for communities in need.", Impact: []string{"100+ wells constructed"}},
}

var latestUpdates = []update{
	{Date: "Feb 5, 2026", Title: "Medical Camp Serves 1,000 Patients", Excerpt: "Our healthcare team provided free medical services to remote communities."},
	{Date: "Jan 28, 2026", Title: "Clean Water Project Completed", Excerpt: "Five new wells now provide clean drinking water to 2,000 people."},
}

var values = []titled{
	{Title: "Compassion", Description: "We lead with empathy and understanding, putting people first in everything we do."},
	{Title: "Community", Description: "We believe in the power of collective action and building strong, supportive networks."},
	{Title: "Impact", Description: "We focus on sustainable, measurable outcomes that create lasting positive change."},
	{Title: "Transparency", Description: "We operate with integrity and accountability, ensuring trust in all our relationships."},
}

var team = []person{
	{Name: "Sarah Johnson", Role: "Executive Director", Bio: "15+ years of experience in international development and humanitarian work."},
	{Name: "Michael Chen", Role: "Director of Programs", Bio: "Expert in sustainable development with a focus on education and healthcare initiatives."},
	{Name: "Amara Okafor", Role: "Director of Operations", Bio: "Specializes in logistics and resource management for global NGO operations."},
	{Name: "David Martinez", Role: "Director of Fundraising", Bio: "Passionate about building partnerships and securing resources for impactful projects."},
}

var programs = []program{
	{
		Title:       "Education for All",
		Description: "Providing quality education and learning resources to underserved communities, ensuring every child has the opportunity to learn and grow.",
		Impact:      []string{"15,000+ students supported annually", "45 schools built or renovated", "500+ teachers trained", "100,000+ books distributed"},
		Locations:   "Kenya, Uganda, Tanzania, India",
	},
	{
		Title:       "Healthcare Access",
		Description: "Delivering essential healthcare services, medical supplies, and health education to remote and underserved areas.",
		Impact:      []string{"25,000+ patients treated annually", "12 mobile medical clinics operating", "200+ healthcare workers trained", "50+ health camps organized yearly"},
		Locations:   "Bangladesh, Nepal, Ethiopia, Haiti",
	},
	{
		Title:       "Clean Water Initiative",
		Description: "Building sustainable water infrastructure and promoting hygiene education to ensure access to clean, safe drinking water.",
		Impact:      []string{"100+ wells constructed", "50,000+ people with clean water access", "30 water filtration systems installed", "200+ communities reached"},
		Locations:   "Mali, Niger, Burkina Faso, Senegal",
	},
	{
		Title:       "Sustainable Agriculture",
		Description: "Empowering farmers with modern techniques, tools, and knowledge to increase crop yields and ensure food security.",
		Impact:      []string{"5,000+ farmers trained", "40% average increase in crop yields", "100+ farming cooperatives established", "20,000+ families benefiting"},
		Locations:   "Rwanda, Malawi, Zimbabwe, Guatemala",
	},
	{
		Title:       "Shelter & Housing",
		Description: "Providing safe, dignified housing solutions for families affected by natural disasters and extreme poverty.",
		Impact:      []string{"500+ homes built or repaired", "2,500+ people housed", "15 community centers constructed", "100% disaster-resistant structures"},
		Locations:   "Philippines, Indonesia, Honduras, Peru",
	},
	{
		Title:       "Economic Empowerment",
		Description: "Creating opportunities for sustainable livelihoods through skills training, microfinance, and entrepreneurship support.",
		Impact:      []string{"3,000+ individuals trained", "800+ small businesses launched", "$2M+ in microloans distributed", "75% business success rate"},
		Locations:   "Cambodia, Myanmar, Bolivia, Nicaragua",
	},
}

var opportunities = []titled{
	{Title: "Education Programs", Description: "Help teach literacy, STEM subjects, or vocational skills to students in underserved communities."},
	{Title: "Healthcare Initiatives", Description: "Support medical clinics, health education campaigns, or maternal and child health programs."},
	{Title: "Clean Water Projects", Description: "Assist with water infrastructure development, maintenance, and community education."},
	{Title: "Community Development", Description: "Participate in housing projects, economic empowerment programs, or agricultural initiatives."},
	{Title: "Administrative Support", Description: "Contribute your professional skills in areas like marketing, finance, IT, or project management."},
	{Title: "Fundraising & Events", Description: "Help organize fundraising campaigns, awareness events, or donor engagement activities."},
}

var volunteerBenefits = []titled{
	{Title: "Make Real Impact", Description: "See the direct results of your efforts in the communities we serve."},
	{Title: "Develop New Skills", Description: "Gain hands-on experience in international development, project management, and cross-cultural collaboration."},
	{Title: "Join a Global Community", Description: "Connect with like-minded individuals from around the world who share your passion for positive change."},
	{Title: "Flexible Opportunities", Description: "Choose from on-site positions or remote volunteer roles that fit your schedule and location."},
	{Title: "Comprehensive Support", Description: "Receive training, mentorship, and ongoing support throughout your volunteer journey."},
}

var impactExamples = []impactExample{
	{Amount: "$50", Impact: "Provides school supplies for 5 children"},
	{Amount: "$100", Impact: "Funds a week of medical care in a remote clinic"},
	{Amount: "$250", Impact: "Builds a clean water well for a small community"},
	{Amount: "$500", Impact: "Sponsors a full year of education for a student"},
}

var faqs = []faq{
	{
		Question: "How can I volunteer with Samarpan Trust?",
		Answer:   "Visit our Get Involved page to learn about current volunteer opportunities and submit your interest form. We'll match you with programs that align with your skills and availability.",
	},
	{
		Question: "Are donations tax-deductible?",
		Answer:   "Yes, Samarpan Trust is a registered non-profit organization. All donations are tax-deductible to the extent allowed by law. You will receive a receipt for your records.",
	},
	{
		Question: "Where does Samarpan Trust operate?",
		Answer:   "We currently operate programs in 15 countries across Asia, Africa, and South America, focusing on communities with the greatest need for education, healthcare, and sustainable development support.",
	},
	{
		Question: "How can I stay updated on Samarpan Trust's work?",
		Answer:   "Follow us on social media and check our website regularly for the latest updates on our programs, impact stories, and upcoming events. You can also contact us to join our mailing list.",
	},
}

type navLink struct{ Path, Label string }

var nav = []navLink{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/programs", Label: "Programs"},
	{Path: "/get-involved", Label: "Get Involved"},
	{Path: "/donate", Label: "Donate"},
	{Path: "/contact", Label: "Contact"},
}

// formOptions feeds the select boxes of the get-involved form.
var formOptions = struct {
	Areas          []domain.Option
	Availabilities []domain.Option
}{domain.AreasOfInterest, domain.Availabilities}
