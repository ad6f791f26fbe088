// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

// parseArticleSet decodes an efetch XML payload into Paper records. The
// payload is loosely structured: any field may be missing and is then left
// empty in the record. Articles without a PMID are skipped entirely since
// every record handed to callers must carry an identifier.
func parseArticleSet(r io.Reader) ([]types.Paper, error) {
	var set articleSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, err
	}

	var papers []types.Paper
	for _, a := range set.Articles {
		pmid := strings.TrimSpace(a.Citation.PMID)
		if pmid == "" {
			continue
		}

		p := types.Paper{
			ID:       pmid,
			Title:    strings.TrimSpace(a.Citation.Article.Title),
			Journal:  strings.TrimSpace(a.Citation.Article.Journal.Title),
			Year:     strings.TrimSpace(a.Citation.Article.Journal.Issue.PubDate.Year),
			Abstract: joinAbstract(a.Citation.Article.Abstract.Sections),
		}

		for _, au := range a.Citation.Article.Authors {
			name := strings.TrimSpace(strings.TrimSpace(au.ForeName) + " " + strings.TrimSpace(au.LastName))
			if name != "" {
				p.Authors = append(p.Authors, name)
			}
		}

		for _, id := range a.Data.IDs {
			if id.Type == "doi" {
				p.DOI = strings.TrimSpace(id.Value)
				break
			}
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// joinAbstract flattens abstract sections into one string. Structured
// abstracts carry a Label attribute per section ("BACKGROUND", "METHODS");
// those are kept as "LABEL: text" prefixes in source order.
func joinAbstract(sections []abstractText) string {
	var parts []string
	for _, s := range sections {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if s.Label != "" {
			parts = append(parts, s.Label+": "+text)
		} else {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// efetch XML structures, pared down to the fields the assistant surfaces.
type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
	Data     pubmedData      `xml:"PubmedData"`
}

type medlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	Title    string   `xml:"ArticleTitle"`
	Journal  journal  `xml:"Journal"`
	Abstract abstract `xml:"Abstract"`
	Authors  []author `xml:"AuthorList>Author"`
}

type journal struct {
	Title string       `xml:"Title"`
	Issue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate pubDate `xml:"PubDate"`
}

type pubDate struct {
	Year string `xml:"Year"`
}

type abstract struct {
	Sections []abstractText `xml:"AbstractText"`
}

type abstractText struct {
	Label string `xml:"Label,attr"`
	Text  string `xml:",chardata"`
}

type author struct {
	LastName string `xml:"LastName"`
	ForeName string `xml:"ForeName"`
}

type pubmedData struct {
	IDs []articleID `xml:"ArticleIdList>ArticleId"`
}

type articleID struct {
	Type  string `xml:"IdType,attr"`
	Value string `xml:",chardata"`
}
