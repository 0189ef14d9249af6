package main

import (
	"io"
	"net/http"
	"net/mail"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aquilaclo/storefront/internal/auth"
)

// signUpHandler creates an account and signs the user straight in.
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.SignUpRequest true "credentials"
// @Success 201 {object} map[string]interface{}
// @Router /auth/signup [post]
func signUpHandler(repo auth.Repository, tokens *auth.Tokens, hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		u := &auth.User{ID: uuid.NewString(), Email: req.Email, PasswordHash: hash, CreatedAt: time.Now().UTC()}
		if err := repo.Create(c.Request.Context(), u); err != nil {
			if err == auth.ErrAlreadyExist {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		tok, err := tokens.Issue(u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		hub.Publish(auth.Event{Type: auth.SignedIn, UserID: u.ID})
		c.JSON(http.StatusCreated, gin.H{"user": u, "token": tok})
	}
}

// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.SignInRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Router /auth/login [post]
func signInHandler(repo auth.Repository, tokens *auth.Tokens, hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		u, err := repo.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if !auth.CheckPassword(u.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		tok, err := tokens.Issue(u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		hub.Publish(auth.Event{Type: auth.SignedIn, UserID: u.ID})
		c.JSON(http.StatusOK, gin.H{"user": u, "token": tok})
	}
}

// sessionHandler echoes the session resolved from the bearer token, so
// clients have one place to ask "who am I".
func sessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := auth.SessionFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// signOutHandler publishes the sign-out so every live subscriber for the
// user observes the session change. Tokens are stateless; the client drops
// its copy.
func signOutHandler(hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := auth.SessionFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		hub.Publish(auth.Event{Type: auth.SignedOut, UserID: sess.UserID})
		c.JSON(http.StatusOK, gin.H{"status": "signed out"})
	}
}

// sessionStreamHandler streams session events for the caller as SSE until the
// client goes away. The subscription is released on disconnect.
func sessionStreamHandler(hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := auth.SessionFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		sub := hub.Subscribe(sess.UserID)
		defer sub.Release()

		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Stream(func(w io.Writer) bool {
			select {
			case ev, open := <-sub.C:
				if !open {
					return false
				}
				c.SSEvent("session", ev)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
