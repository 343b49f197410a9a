package ner

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon 标注器使用的词表，进程启动时加载一次，之后只读
type Lexicon struct {
	// OrgKeywords 出现在组织名中的关键词（公司后缀、机构类型）
	OrgKeywords []string `yaml:"org_keywords"`
	// Cities 城市名（LOC）
	Cities []string `yaml:"cities"`
	// Countries 国家/行政区名（GPE）
	Countries []string `yaml:"countries"`
	// NameStopwords 不允许出现在人名中的词
	NameStopwords []string `yaml:"name_stopwords"`
	// HeadingWords 章节标题词，首个标题行之后不再识别人名
	HeadingWords []string `yaml:"heading_words"`

	orgSet     map[string]struct{}
	citySet    map[string]struct{}
	countrySet map[string]struct{}
	stopSet    map[string]struct{}
	headingSet map[string]struct{}
}

// defaultLexicon 内置词表，未配置词表文件时使用
func defaultLexicon() *Lexicon {
	return &Lexicon{
		OrgKeywords: []string{
			"pt", "cv", "tbk", "corp", "corporation", "inc", "ltd", "llc",
			"group", "company", "studio", "labs", "technologies", "teknologi",
			"universitas", "university", "institut", "institute", "politeknik",
			"sekolah", "academy", "akademi", "bank", "agency",
		},
		Cities: []string{
			"jakarta", "bandung", "surabaya", "yogyakarta", "medan",
			"semarang", "makassar", "denpasar", "bogor", "depok", "tangerang",
			"bekasi", "malang", "singapore", "kuala lumpur", "sydney",
			"london", "amsterdam", "berlin", "tokyo", "san francisco",
		},
		Countries: []string{
			"indonesia", "malaysia", "singapura", "australia", "japan",
			"jepang", "germany", "jerman", "netherlands", "belanda",
			"united states", "amerika serikat", "united kingdom", "inggris",
		},
		NameStopwords: []string{
			"resume", "curriculum", "vitae", "linkedin", "github", "email",
			"phone", "telepon", "alamat", "address", "profile", "profil",
		},
		HeadingWords: []string{
			"skills", "keterampilan", "keahlian", "kemampuan", "education",
			"pendidikan", "experience", "experiences", "pengalaman",
			"projects", "proyek", "projek", "portfolio", "certifications",
			"sertifikat", "summary", "ringkasan", "objective",
		},
	}
}

// LoadLexicon 加载词表。path为空时返回内置词表；
// 配置了路径但文件不可读或不可解析时视为模型不可用，由调用方作为致命错误处理。
func LoadLexicon(path string) (*Lexicon, error) {
	lex := defaultLexicon()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: 读取词表文件 %s: %v", ErrModelUnavailable, path, err)
		}
		var loaded Lexicon
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("%w: 解析词表文件 %s: %v", ErrModelUnavailable, path, err)
		}
		// 文件中给出的列表覆盖内置词表，未给出的沿用内置
		if len(loaded.OrgKeywords) > 0 {
			lex.OrgKeywords = loaded.OrgKeywords
		}
		if len(loaded.Cities) > 0 {
			lex.Cities = loaded.Cities
		}
		if len(loaded.Countries) > 0 {
			lex.Countries = loaded.Countries
		}
		if len(loaded.NameStopwords) > 0 {
			lex.NameStopwords = loaded.NameStopwords
		}
		if len(loaded.HeadingWords) > 0 {
			lex.HeadingWords = loaded.HeadingWords
		}
	}

	lex.orgSet = toSet(lex.OrgKeywords)
	lex.citySet = toSet(lex.Cities)
	lex.countrySet = toSet(lex.Countries)
	lex.stopSet = toSet(lex.NameStopwords)
	lex.headingSet = toSet(lex.HeadingWords)
	return lex, nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[strings.ToLower(strings.TrimSpace(it))] = struct{}{}
	}
	return set
}

func (l *Lexicon) isOrgKeyword(token string) bool {
	_, ok := l.orgSet[normalizeToken(token)]
	return ok
}

func (l *Lexicon) isCity(phrase string) bool {
	_, ok := l.citySet[normalizeToken(phrase)]
	return ok
}

func (l *Lexicon) isCountry(phrase string) bool {
	_, ok := l.countrySet[normalizeToken(phrase)]
	return ok
}

func (l *Lexicon) isNameStopword(token string) bool {
	_, ok := l.stopSet[normalizeToken(token)]
	return ok
}

func (l *Lexicon) isHeadingWord(token string) bool {
	_, ok := l.headingSet[normalizeToken(token)]
	return ok
}

// normalizeToken 小写并去掉结尾标点
func normalizeToken(token string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(token), ".,:;"))
}
