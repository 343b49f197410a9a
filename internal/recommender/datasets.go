package recommender

// CareerField 一个职业领域及其关键词表，关键词均为小写
type CareerField struct {
	Name     string
	Keywords []string
}

// careerFields 领域按定义顺序排列，得分相同的情况下排在前面的领域胜出
var careerFields = []CareerField{
	{
		Name: "Data Science",
		Keywords: []string{
			"python", "r", "sql", "pandas", "numpy", "matplotlib", "seaborn",
			"jupyter", "statistics", "data analysis", "data visualization",
			"tableau", "power bi", "excel", "scikit-learn", "data mining",
			"big data", "hadoop", "spark", "etl",
		},
	},
	{
		Name: "Web Development",
		Keywords: []string{
			"html", "css", "javascript", "typescript", "react", "vue",
			"angular", "node.js", "express", "django", "flask", "laravel",
			"php", "golang", "rest api", "graphql", "mysql", "postgresql",
			"mongodb", "bootstrap", "tailwind", "next.js",
		},
	},
	{
		Name: "Android Development",
		Keywords: []string{
			"android", "kotlin", "java", "android studio", "jetpack compose",
			"xml", "gradle", "room", "retrofit", "firebase", "material design",
			"mvvm", "dagger", "coroutines",
		},
	},
	{
		Name: "iOS Development",
		Keywords: []string{
			"ios", "swift", "swiftui", "objective-c", "xcode", "uikit",
			"core data", "cocoapods", "combine", "testflight", "app store",
			"auto layout",
		},
	},
	{
		Name: "UI/UX",
		Keywords: []string{
			"figma", "sketch", "adobe xd", "wireframe", "prototyping",
			"user research", "usability testing", "design system",
			"interaction design", "user interface", "user experience",
			"photoshop", "illustrator", "design thinking",
		},
	},
	{
		Name: "Cloud Computing",
		Keywords: []string{
			"aws", "azure", "google cloud", "gcp", "docker", "kubernetes",
			"terraform", "ansible", "ci/cd", "jenkins", "devops", "linux",
			"serverless", "lambda", "cloud architecture", "load balancing",
		},
	},
	{
		Name: "Internet of Things",
		Keywords: []string{
			"arduino", "raspberry pi", "esp32", "mqtt", "embedded systems",
			"sensors", "microcontroller", "c", "c++", "iot", "lora",
			"zigbee", "firmware",
		},
	},
	{
		Name: "Machine Learning",
		Keywords: []string{
			"machine learning", "deep learning", "tensorflow", "pytorch",
			"keras", "neural networks", "nlp", "computer vision", "opencv",
			"reinforcement learning", "transformers", "hugging face",
			"feature engineering", "model deployment", "mlops",
		},
	},
	{
		Name: "Cyber Security",
		Keywords: []string{
			"penetration testing", "network security", "cryptography",
			"ethical hacking", "kali linux", "wireshark", "metasploit",
			"burp suite", "owasp", "vulnerability assessment", "siem",
			"incident response", "firewall", "security audit",
		},
	},
}

// fieldCourses 各领域的推荐课程，与原始数据一致只覆盖五个领域
var fieldCourses = map[string][]string{
	"Data Science": {
		"Machine Learning Crash Course by Google [Free]",
		"Data Science: R Basics by Harvard [Free]",
		"IBM Data Science Professional Certificate [Coursera]",
		"Python for Data Science and Machine Learning Bootcamp [Udemy]",
		"Data Scientist Master Program of Simplilearn [IBM]",
	},
	"Web Development": {
		"Django Crash Course [Free]",
		"ReactJS Project Development Training [Udemy]",
		"Full Stack Web Developer by Udacity [Nanodegree]",
		"The Web Developer Bootcamp [Udemy]",
		"Responsive Web Design by freeCodeCamp [Free]",
	},
	"Android Development": {
		"Android Development for Beginners [Free]",
		"Android App Development Specialization [Coursera]",
		"Associate Android Developer Certification [Google]",
		"Become an Android Kotlin Developer by Udacity [Nanodegree]",
		"The Complete Android Developer Course [Udemy]",
	},
	"iOS Development": {
		"iOS App Development by LinkedIn [Learning]",
		"iOS & Swift - The Complete iOS App Development Bootcamp [Udemy]",
		"Become an iOS Developer by Udacity [Nanodegree]",
		"iOS App Development with Swift Specialization [Coursera]",
		"Swift for Beginners [Free]",
	},
	"UI/UX": {
		"Google UX Design Professional Certificate [Coursera]",
		"UI / UX Design Specialization [Coursera]",
		"The Complete App Design Course - UX, UI and Design Thinking [Udemy]",
		"UX & Web Design Master Course [Udemy]",
		"DESIGN RULES: Principles + Practices for Great UI Design [Udemy]",
	},
}

// resumeVideos 简历撰写教学视频池
var resumeVideos = []string{
	"https://youtu.be/y8YH0Qbu5h4",
	"https://youtu.be/J-4Fv8nq1iA",
	"https://youtu.be/yp693O87GmM",
	"https://youtu.be/UeMmCex9uTU",
	"https://youtu.be/dQ7Q8ZdnuN0",
	"https://youtu.be/HQqqQx5BCFY",
	"https://youtu.be/CLUsplI4xMU",
	"https://youtu.be/pbczsLkv7Cc",
}

// interviewVideos 面试准备教学视频池
var interviewVideos = []string{
	"https://youtu.be/Ji46s5BHdr0",
	"https://youtu.be/seVxXHi2YMs",
	"https://youtu.be/9FgfsLa_SmY",
	"https://youtu.be/2HQmjLu-6RQ",
	"https://youtu.be/DQd_AlIvHUw",
	"https://youtu.be/oVVdezJ0e7w",
	"https://youtu.be/JZK1MZwUyUU",
	"https://youtu.be/CyXLhHQS3KY",
}
