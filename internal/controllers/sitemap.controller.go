package controllers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/repository"
	"petkey/internal/utils"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type staticRoute struct {
	path       string
	changeFreq string
	priority   string
}

var staticRoutes = []staticRoute{
	{"/", "daily", "1.0"},
	{"/hizmetler", "weekly", "0.9"},
	{"/hakkimizda", "monthly", "0.8"},
	{"/veterinerler", "weekly", "0.8"},
	{"/blog", "daily", "0.9"},
	{"/galeri", "weekly", "0.7"},
	{"/iletisim", "monthly", "0.8"},
	{"/randevu", "monthly", "0.9"},
}

type SitemapController struct {
	blogRepo    repository.BlogPostRepository
	serviceRepo repository.ServiceRepository
	vetRepo     repository.VeterinarianRepository
}

func NewSitemapController(
	blogRepo repository.BlogPostRepository,
	serviceRepo repository.ServiceRepository,
	vetRepo repository.VeterinarianRepository,
) *SitemapController {
	return &SitemapController{
		blogRepo:    blogRepo,
		serviceRepo: serviceRepo,
		vetRepo:     vetRepo,
	}
}

// GetSitemap godoc
// @Summary Get the sitemap
// @Description Static routes plus published posts, active services and active veterinarians
// @Tags sitemap
// @Produce xml
// @Success 200 {string} string "sitemap XML"
// @Router /sitemap.xml [get]
func (sc *SitemapController) GetSitemap(c *gin.Context) {
	base := utils.SiteURL()

	urlset := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range staticRoutes {
		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc:        base + route.path,
			ChangeFreq: route.changeFreq,
			Priority:   route.priority,
		})
	}

	posts, err := sc.blogRepo.FindAll(repository.BlogPostFilter{PublishedOnly: true})
	if err == nil {
		for i := range posts {
			urlset.URLs = append(urlset.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/blog/%s", base, posts[i].Slug),
				LastMod:    posts[i].UpdatedAt.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   "0.7",
			})
		}
	}

	services, err := sc.serviceRepo.FindAll(true)
	if err == nil {
		for i := range services {
			urlset.URLs = append(urlset.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/service/%s", base, services[i].Slug),
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}
	}

	vets, err := sc.vetRepo.FindActive()
	if err == nil {
		for i := range vets {
			urlset.URLs = append(urlset.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/veteriner/%d", base, vets[i].ID),
				ChangeFreq: "monthly",
				Priority:   "0.6",
			})
		}
	}

	c.XML(http.StatusOK, urlset)
}
