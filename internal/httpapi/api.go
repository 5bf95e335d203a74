package httpapi

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"ArticlesExplorer/internal/domain"
	"ArticlesExplorer/internal/search"
	"ArticlesExplorer/internal/usecase"
)

type topicResp struct {
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Aliases  []string `json:"aliases,omitempty"`
	Count    int      `json:"count"`
	Hashtags []string `json:"hashtags"`
}

func (s *Server) apiSearch(c *gin.Context) {
	c.JSON(http.StatusOK, search.Evaluate(s.catalog, s.searchOpts, c.Query("q")))
}

func (s *Server) apiArticles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"articles": s.catalog.All()})
}

func (s *Server) apiArticle(c *gin.Context) {
	article, ok := s.catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) apiTopics(c *gin.Context) {
	topics := s.catalog.Topics()
	out := make([]topicResp, 0, len(topics))
	for _, t := range topics {
		out = append(out, topicResp{
			Name:     t.Name,
			Slug:     t.Slug,
			Aliases:  t.Aliases,
			Count:    len(s.catalog.ByTopic(t.Slug)),
			Hashtags: t.Hashtags,
		})
	}
	c.JSON(http.StatusOK, gin.H{"topics": out})
}

func (s *Server) apiTopicArticles(c *gin.Context) {
	slug := c.Param("slug")
	if topic, ok := s.catalog.Topic(slug); ok && topic.Slug != slug {
		c.Redirect(http.StatusMovedPermanently, "/api/topics/"+url.PathEscape(topic.Slug)+"/articles")
		return
	}
	c.JSON(http.StatusOK, s.views.ArticleList(c.Request.Context(), s.stateFor(c), slug))
}

func (s *Server) apiState(c *gin.Context) {
	state := s.stateFor(c)
	state.Load(c.Request.Context())
	c.JSON(http.StatusOK, state.Snapshot())
}

func (s *Server) apiClearState(c *gin.Context) {
	if err := s.stateFor(c).Clear(c.Request.Context()); err != nil {
		s.logError("clear state failed", "profile", profileID(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "could not clear state"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) apiToggleRead(c *gin.Context) {
	item, err := s.views.ToggleRead(c.Request.Context(), s.stateFor(c), c.Param("id"))
	s.respondItem(c, item, err)
}

func (s *Server) apiMarkRead(c *gin.Context) {
	item, err := s.views.MarkRead(c.Request.Context(), s.stateFor(c), c.Param("id"))
	s.respondItem(c, item, err)
}

func (s *Server) apiToggleHighlight(c *gin.Context) {
	item, err := s.views.ToggleHighlight(c.Request.Context(), s.stateFor(c), c.Param("id"))
	s.respondItem(c, item, err)
}

func (s *Server) respondItem(c *gin.Context, item usecase.ArticleItem, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "article not found"})
	case err != nil:
		s.logError("update state failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "could not save state"})
	default:
		c.JSON(http.StatusOK, item)
	}
}
