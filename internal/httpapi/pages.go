package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"ArticlesExplorer/internal/domain"
	"ArticlesExplorer/internal/search"
	"ArticlesExplorer/internal/usecase"
)

type topicLink struct {
	Name  string
	Slug  string
	Count int
}

func (s *Server) topicLinks() []topicLink {
	topics := s.catalog.Topics()
	links := make([]topicLink, 0, len(topics))
	for _, t := range topics {
		links = append(links, topicLink{Name: t.Name, Slug: t.Slug, Count: len(s.catalog.ByTopic(t.Slug))})
	}
	return links
}

func (s *Server) index(c *gin.Context) {
	s.render(c, http.StatusOK, "index", gin.H{
		"Topics": s.topicLinks(),
	})
}

func (s *Server) searchPage(c *gin.Context) {
	query := c.Query("q")
	s.render(c, http.StatusOK, "search", gin.H{
		"Title":      query,
		"Query":      query,
		"Suggestion": search.Evaluate(s.catalog, s.searchOpts, query),
	})
}

func (s *Server) topicPage(c *gin.Context) {
	slug := c.Param("slug")
	page, err := s.views.TopicDetail(slug)
	if err != nil {
		s.notFound(c, "Topic not found")
		return
	}
	if page.Topic.Slug != slug {
		c.Redirect(http.StatusMovedPermanently, "/topic/"+url.PathEscape(page.Topic.Slug))
		return
	}
	s.render(c, http.StatusOK, "topic", gin.H{"Title": page.Topic.Name, "Page": page})
}

func (s *Server) articleListPage(c *gin.Context) {
	slug := c.Param("slug")
	if topic, ok := s.catalog.Topic(slug); ok && topic.Slug != slug {
		c.Redirect(http.StatusMovedPermanently, "/articles/"+url.PathEscape(topic.Slug))
		return
	}

	page := s.views.ArticleList(c.Request.Context(), s.stateFor(c), slug)
	s.render(c, http.StatusOK, "articles", gin.H{"Title": page.Title, "Page": page})
}

func (s *Server) articlePage(c *gin.Context) {
	item, err := s.views.OpenArticle(c.Request.Context(), s.stateFor(c), c.Param("id"))
	if err != nil {
		s.notFound(c, usecase.NotFoundMessage)
		return
	}
	s.render(c, http.StatusOK, "article", gin.H{
		"Title":    item.Article.Title,
		"Item":     item,
		"Sections": item.Article.Sections.Ordered(),
	})
}

func (s *Server) toggleReadForm(c *gin.Context) {
	state := s.stateFor(c)
	s.toggleForm(c, func(id string) error {
		_, err := s.views.ToggleRead(c.Request.Context(), state, id)
		return err
	})
}

func (s *Server) toggleHighlightForm(c *gin.Context) {
	state := s.stateFor(c)
	s.toggleForm(c, func(id string) error {
		_, err := s.views.ToggleHighlight(c.Request.Context(), state, id)
		return err
	})
}

func (s *Server) toggleForm(c *gin.Context, toggle func(id string) error) {
	id := c.Param("id")
	if err := toggle(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notFound(c, usecase.NotFoundMessage)
			return
		}
		s.logError("toggle failed", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "could not save your change")
		return
	}
	c.Redirect(http.StatusSeeOther, returnPath(c.PostForm("return"), "/article/"+url.PathEscape(id)))
}

// returnPath only follows local absolute paths. Browsers read a backslash
// as a slash, so /\host counts as a network path like //host.
func returnPath(candidate, fallback string) string {
	normalized := strings.ReplaceAll(candidate, `\`, "/")
	if !strings.HasPrefix(normalized, "/") || strings.HasPrefix(normalized, "//") {
		return fallback
	}
	u, err := url.Parse(normalized)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return normalized
}

func (s *Server) notFound(c *gin.Context, message string) {
	s.render(c, http.StatusNotFound, "notfound", gin.H{"Message": message})
}

// render fills the keys the shared header reads before executing name.
func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	for _, key := range []string{"Title", "Query"} {
		if _, ok := data[key]; !ok {
			data[key] = ""
		}
	}
	data["MinLength"] = s.searchOpts.MinQueryLength
	c.HTML(status, name, data)
}
