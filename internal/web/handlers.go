package web

import (
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/carousel"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

const (
	successText = "Thank you for reaching out. I'll get back to you soon."
	failureText = "Sorry, there was an error sending your message. Please try again later."
)

func (s *Server) handleIndex(c *gin.Context) {
	grid, err := s.grid(c, catalog.All)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index", pageView{
		Profile:  s.content.Profile,
		Nav:      s.content.Nav,
		Skills:   s.content.Skills,
		Services: s.content.Services,
		Grid:     grid,
		Form:     s.formView(contact.Message{}, nil),
		Year:     time.Now().Year(),
	})
}

func (s *Server) handleProjects(c *gin.Context) {
	f, err := catalog.ParseFilter(c.DefaultQuery("filter", string(catalog.All)))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	grid, err := s.grid(c, f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "grid", grid)
}

func (s *Server) grid(c *gin.Context, f catalog.Filter) (gridView, error) {
	ctx := c.Request.Context()
	projects, err := s.store.Projects(ctx, f)
	if err != nil {
		return gridView{}, err
	}
	counts, err := s.store.Counts(ctx)
	if err != nil {
		return gridView{}, err
	}

	v := gridView{Filter: f}
	for _, tab := range catalog.Filters {
		v.Tabs = append(v.Tabs, tabView{Filter: tab, Label: tab.Label(), Count: counts[tab], Active: tab == f})
	}
	for _, p := range projects {
		car, err := carousel.New(p.Screenshots, carousel.Uncontrolled{})
		if err != nil {
			return gridView{}, err
		}
		assets.MarkMissing(s.opts.Images, p.Screenshots, car.ReportLoadError)
		id := "slider-" + p.ID
		v.Cards = append(v.Cards, cardView{
			Project: p,
			Slider:  newSlideView(p, car, id, sliderEndpoint(p.ID), id),
		})
	}
	return v, nil
}

func sliderEndpoint(id string) string { return "/projects/" + id + "/slider" }
func modalEndpoint(id string) string  { return "/projects/" + id + "/modal" }

// handleSlider advances a card slider. The page holds the index, so the
// carousel runs controlled against the index sent with the request.
func (s *Server) handleSlider(c *gin.Context) {
	p, ok := s.project(c)
	if !ok {
		return
	}

	index := queryInt(c, "index", 0)
	var car *carousel.Carousel
	car, err := carousel.New(p.Screenshots, carousel.Controlled{
		Index: index,
		OnChange: func(i int, _ carousel.Direction) {
			index = i
			// i comes from the carousel itself and is always in range.
			_ = car.Sync(i)
		},
	})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	assets.MarkMissing(s.opts.Images, p.Screenshots, car.ReportLoadError)

	switch c.Query("action") {
	case "next":
		car.Next()
	case "prev":
		car.Previous()
	case "jump":
		if err := car.JumpTo(queryInt(c, "to", -1)); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
	}

	id := "slider-" + p.ID
	c.HTML(http.StatusOK, "slider", newSlideView(p, car, id, sliderEndpoint(p.ID), id))
}

// handleModal renders the expanded screenshot view. Escape closes it with
// an empty fragment.
func (s *Server) handleModal(c *gin.Context) {
	p, ok := s.project(c)
	if !ok {
		return
	}

	g, err := carousel.NewGallery(p.Screenshots, queryInt(c, "index", 0))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	assets.MarkMissing(s.opts.Images, p.Screenshots, g.ReportLoadError)

	if g.HandleKey(c.Query("key")) {
		c.String(http.StatusOK, "")
		return
	}
	switch c.Query("action") {
	case "next":
		g.Next()
	case "prev":
		g.Previous()
	case "jump":
		if err := g.Select(queryInt(c, "to", -1)); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
	}

	c.HTML(http.StatusOK, "modal", modalView{
		Project: p,
		Slider:  newSlideView(p, g.Slider(), "modal-slider-"+p.ID, modalEndpoint(p.ID), "project-modal"),
		Thumbs:  g.Thumbnails(),
		Counter: g.Counter(),
	})
}

// handleTypewriter streams the hero text. Each connection runs its own
// engine; slow clients only ever see the latest text.
func (s *Server) handleTypewriter(c *gin.Context) {
	updates := make(chan string, 1)
	engine := typewriter.NewEngine(s.content.Profile.Roles, s.opts.Timing,
		typewriter.WithScheduler(s.opts.Scheduler),
		typewriter.WithOnChange(func(text string) {
			select {
			case <-updates:
			default:
			}
			updates <- text
		}),
	)
	defer engine.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	engine.Start()
	c.SSEvent("typewriter", template.HTMLEscapeString(engine.Text()))
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case text := <-updates:
			c.SSEvent("typewriter", template.HTMLEscapeString(text))
			return true
		}
	})
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", s.formView(contact.Message{}, nil))
}

// handleContact validates and submits the form. Field errors re-render the
// form so HTMX can swap it in place.
func (s *Server) handleContact(c *gin.Context) {
	var m contact.Message
	if err := c.ShouldBind(&m); err != nil {
		if fields := contact.FieldErrors(err); fields != nil {
			c.HTML(http.StatusOK, "contact-form", s.formView(m, fields))
			return
		}
		c.HTML(http.StatusBadRequest, "contact-error", resultView{Text: failureText})
		return
	}

	if err := s.opts.Submitter.Submit(c.Request.Context(), m); err != nil {
		if fields := contact.FieldErrors(err); fields != nil {
			c.HTML(http.StatusOK, "contact-form", s.formView(m, fields))
			return
		}
		log.Printf("level=error event=contact_failed err=%q", err)
		c.HTML(http.StatusOK, "contact-error", resultView{Text: failureText})
		return
	}
	c.HTML(http.StatusOK, "contact-success", resultView{Text: successText})
}

func (s *Server) formView(m contact.Message, errs map[string]string) formView {
	return formView{Message: m, Errors: errs, Email: s.email()}
}

// email is the first mailto contact of the profile.
func (s *Server) email() string {
	for _, ct := range s.content.Profile.Contacts {
		if addr, ok := strings.CutPrefix(ct.Href, "mailto:"); ok {
			return addr
		}
	}
	return ""
}

func (s *Server) handleAPIProjects(c *gin.Context) {
	f, err := catalog.ParseFilter(c.DefaultQuery("filter", string(catalog.All)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	projects, err := s.store.Projects(c.Request.Context(), f)
	if err != nil {
		s.fail(c, err)
		return
	}
	if projects == nil {
		projects = []catalog.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"filter": f, "projects": projects})
}

func (s *Server) handleAPIProject(c *gin.Context) {
	p, ok := s.project(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// project loads the :id project, writing 404 when it does not exist.
func (s *Server) project(c *gin.Context) (catalog.Project, bool) {
	p, err := s.store.Project(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		c.String(http.StatusNotFound, "project not found")
		return p, false
	}
	if err != nil {
		s.fail(c, err)
		return p, false
	}
	return p, true
}

func (s *Server) fail(c *gin.Context, err error) {
	log.Printf("level=error event=request_failed path=%s err=%q", c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "internal error")
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}
