package constant

// DemoDocumentName is the pre-loaded document demo mode answers from.
const DemoDocumentName = "HK_IT_Blueprint.pdf"

// DemoQA is one canned question/answer pair with the keywords that match it.
type DemoQA struct {
	Question string
	Keywords []string
	Answer   string
	Sources  []string
}

// DemoSuggestedQuestions are shown when demo mode has no matching answer.
var DemoSuggestedQuestions = []string{
	"What are the 4 broad development directions?",
	"How does the blueprint address talent development?",
	"What is the Hetao Co-operation Zone?",
	"What does the blueprint say about fintech?",
	"How does the blueprint support startups?",
}

// DemoAnswers are the pre-loaded Q&A pairs for the HK I&T Blueprint.
var DemoAnswers = []DemoQA{
	{
		Question: "What are the 4 broad development directions in the HK I&T Blueprint?",
		Keywords: []string{"4 direction", "four direction", "development direction", "broad direction", "4個"},
		Answer: `The Hong Kong Innovation & Technology Blueprint outlines **4 broad development directions**:

1. **New Industrialisation** — Advancing Hong Kong's re-industrialisation through smart manufacturing, attracting high-value-added industries (e.g., microelectronics, life & health technology), and strengthening the industrial ecosystem.

2. **Digital Economy** — Driving the digital transformation of traditional industries, promoting the wider adoption of fintech, and encouraging the development of the digital economy including Web 3.0 and the metaverse.

3. **Smart City** — Building a smarter, more liveable city by leveraging technology in public services, transport, healthcare, and urban management—anchored by the Smart City Blueprint 2.0.

4. **I&T Infrastructure** — Laying a solid foundation by expanding connectivity (5G, broadband), developing key research infrastructure (e.g., Hetao Shenzhen-Hong Kong Science and Technology Innovation Co-operation Zone), and nurturing I&T talent.

These directions work together to position Hong Kong as a global I&T hub.`,
		Sources: []string{DemoDocumentName},
	},
	{
		Question: "What is the role of InnoHK in the blueprint?",
		Keywords: []string{"innohk", "innovation hub", "research cluster"},
		Answer: `**InnoHK** is a flagship initiative that establishes world-class research clusters at the Hong Kong Science Park. Key highlights:

- It hosts **Research & Development Centres** collaborated with top global universities and institutions
- Two major clusters: **Health@InnoHK** (healthcare and life sciences) and **AIR@InnoHK** (AI and robotics)
- The blueprint calls for expanding InnoHK to attract more overseas talent and institutions
- It serves as a bridge connecting local universities, international research bodies, and the commercial sector

InnoHK embodies Hong Kong's strategy to become a **globally recognised centre for research and development**.`,
		Sources: []string{DemoDocumentName},
	},
	{
		Question: "How does the blueprint address talent development?",
		Keywords: []string{"talent", "human capital", "education", "training", "workforce", "人才"},
		Answer: `The Blueprint places **I&T talent development** as a top priority through multiple strategies:

- **STEM Education**: Strengthening STEM at primary and secondary levels, expanding coding education, and developing computational thinking.
- **University Collaboration**: Partnering with local and overseas universities to create I&T-focused programmes and research opportunities.
- **Attracting Overseas Talent**: Introducing favourable visa and immigration schemes (e.g., Top Talent Pass Scheme) to bring in global I&T professionals.
- **Reskilling & Upskilling**: Supporting existing workers in transitioning to I&T roles through vocational training and professional certifications.
- **Youth Programmes**: Engaging young people through coding competitions, hackathons, and internships with I&T companies.

The goal is to create a **deep and diverse pipeline of local I&T talent** while supplementing it with international expertise.`,
		Sources: []string{DemoDocumentName},
	},
	{
		Question: "What is the Hetao Shenzhen-Hong Kong Science and Technology Innovation Co-operation Zone?",
		Keywords: []string{"hetao", "shenzhen", "co-operation zone", "innovation zone", "cross-border", "河套"},
		Answer: `The **Hetao Shenzhen-Hong Kong Science and Technology Innovation Co-operation Zone** (河套深港科技創新合作區) is a major cross-boundary innovation hub straddling both sides of the Shenzhen River:

- **Hong Kong Park** (Lok Ma Chau Loop): Focuses on life & health technology, AI, data science, and new materials research.
- **Shenzhen Park**: Provides complementary industrial manufacturing and scaling capabilities.

**Strategic significance under the Blueprint**:
- Acts as a **key node** connecting Hong Kong's I&T ecosystem with the Greater Bay Area (GBA)
- Enables research conducted in Hong Kong to be rapidly translated into products across the border
- Provides a unique **"one zone, two parks"** model that leverages both cities' strengths
- Priority focus on "deep tech" research with commercialisation potential

It is one of the Blueprint's most important infrastructure investments for long-term I&T competitiveness.`,
		Sources: []string{DemoDocumentName},
	},
	{
		Question: "What does the blueprint say about fintech?",
		Keywords: []string{"fintech", "financial technology", "digital payment", "virtual bank", "crypto", "web3"},
		Answer: `The Blueprint identifies **fintech** as a core pillar of Hong Kong's digital economy strategy:

- **Regulatory sandbox & licensing**: The HKMA and SFC have created progressive frameworks for virtual banks, virtual insurers, and digital asset platforms.
- **Virtual Assets**: Hong Kong aims to become a global hub for **regulated virtual asset trading**, with a licensing regime for exchanges and openness to retail participation under appropriate safeguards.
- **Cross-boundary payments**: Expanding e-CNY pilots and cross-border payment interoperability with the Greater Bay Area.
- **Open banking**: Promoting data sharing and open APIs between financial institutions to spur innovation.
- **Green fintech**: Encouraging technology-driven sustainable finance solutions.

Hong Kong's position as Asia's leading **international financial centre** is seen as a unique advantage to build a thriving fintech ecosystem that complements—not competes with—traditional finance.`,
		Sources: []string{DemoDocumentName},
	},
	{
		Question: "What is the Smart City Blueprint and what areas does it cover?",
		Keywords: []string{"smart city", "smart transport", "smart government", "smart living", "digital government"},
		Answer: `The **Smart City Blueprint 2.0** is a government-wide strategy to use technology to improve urban living. It covers **6 major dimensions**:

1. **Smart Mobility** — Intelligent traffic management, EV infrastructure, autonomous vehicle R&D, real-time public transport data.
2. **Smart Living** — Digital health records, elderly care tech (AgeTech), smart home infrastructure.
3. **Smart Environment** — IoT-based waste and water management, air quality monitoring, carbon emissions tracking.
4. **Smart People** — Digital literacy programmes, e-inclusion for elderly and disadvantaged groups, STEM education.
5. **Smart Government** — Paperless government services, digital identity (iAM Smart), one-stop portal for public services.
6. **Smart Economy** — Fostering a supportive environment for I&T businesses, cross-sector digital transformation.

The Blueprint aligns Smart City goals with the broader I&T strategy to ensure technology genuinely improves the quality of life in Hong Kong.`,
		Sources: []string{DemoDocumentName},
	},
	{
		Question: "How does the blueprint support startups and the I&T ecosystem?",
		Keywords: []string{"startup", "ecosystem", "incubator", "accelerator", "funding", "sme", "entrepreneurship"},
		Answer: `The Blueprint outlines a comprehensive strategy to nurture a **thriving startup and I&T ecosystem**:

- **Funding Programs**: Expanding the Technology Voucher Programme (TVP), Enterprise Support Scheme (ESS), and R&D tax incentives to help companies invest in innovation.
- **Incubation & Acceleration**: Supporting HKSTP's incubation programmes, Cyberport's accelerator, and various university-run I&T incubators.
- **Government Procurement**: Committing to buy local I&T products and services, giving startups a reference customer and case studies.
- **Co-working Space**: Expanding subsidised space at Cyberport and HKSTP for early-stage companies.
- **Global Connectivity**: Facilitating Hong Kong startups' expansion into the GBA and ASEAN markets through government-backed overseas missions.
- **Family Offices & VC**: Creating a favourable environment for family offices and venture capital to invest in local I&T, including tax concessions.

The aim is to make Hong Kong an **Asia-Pacific startup hub** comparable to Singapore and Shenzhen.`,
		Sources: []string{DemoDocumentName},
	},
	{
		Question: "What are the key targets or KPIs mentioned in the blueprint?",
		Keywords: []string{"target", "kpi", "goal", "metric", "indicator", "by 2030", "objective", "number"},
		Answer: `The Blueprint sets several **ambitious targets** for Hong Kong's I&T development:

- **R&D Expenditure**: Increase R&D spending to **1.5% of GDP** (from the current ~1%), with the government committing to significantly raise its own R&D investment.
- **Tech Companies**: Attract **1,000+ additional technology companies** (including regional HQs) to set up in Hong Kong.
- **I&T Talent**: Train and attract tens of thousands of I&T professionals to address the talent shortage.
- **Smart City**: Roll out **5G** coverage across Hong Kong, expand government digital services to achieve full end-to-end digitisation.
- **New Industrialisation**: Attract projects worth billions of dollars in smart manufacturing investment.
- **Hetao Zone**: Develop the Hong Kong Park of Hetao into a world-class research and innovation hub within the next several years.

These targets are monitored through an **annual I&T progress report** published by the Innovation, Technology and Industry Bureau (ITIB).`,
		Sources: []string{DemoDocumentName},
	},
}
