package api

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/sagelight/outreach/internal/service"
)

// unsubscribePageTmpl renders the human-readable confirmation page.
// The same shape is used whether the address was removed now or was
// already absent from the list.
var unsubscribePageTmpl = template.Must(template.New("unsubscribe").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1.0">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;background-color:#f7f5f0;font-family:Georgia,'Times New Roman',serif;">
  <div style="max-width:560px;margin:80px auto;padding:40px;background:#ffffff;
              border-radius:10px;border-top:4px solid #c8a45d;text-align:center;">
    <h1 style="margin:0 0 16px;font-size:24px;color:#2d3142;">{{.Title}}</h1>
    <p style="margin:0;font-size:16px;line-height:1.6;color:#3d4152;">{{.Detail}}</p>
    <p style="margin:24px 0 0;font-size:14px;color:#8a8674;">{{.Email}}</p>
  </div>
</body>
</html>
`))

// handleUnsubscribe runs the unsubscription workflow for
// GET|POST /unsubscribeUser. The email may arrive via query parameters,
// a JSON body or a form-encoded body; all three are normalized here.
func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	req := parseUnsubscribeRequest(r)

	result, err := s.subscriptionSvc.Unsubscribe(r.Context(), req)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}

	page := struct{ Title, Detail, Email string }{
		Title:  "You have been unsubscribed",
		Detail: "You will no longer receive the quarterly magazine. We are sorry to see you go.",
		Email:  result.Email,
	}
	if result.AlreadyUnsubscribed {
		page.Title = "Already unsubscribed"
		page.Detail = "This address is not on our list; there is nothing more to do."
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := unsubscribePageTmpl.Execute(w, page); err != nil {
		s.logger.Error("rendering unsubscribe page", "error", err)
	}
}

// parseUnsubscribeRequest extracts {email, name} from the query string
// first, then from the body: JSON when the content type says so, form
// values otherwise. Validation of the result belongs to the workflow.
func parseUnsubscribeRequest(r *http.Request) service.UnsubscriptionRequest {
	req := service.UnsubscriptionRequest{
		Email: r.URL.Query().Get("email"),
		Name:  r.URL.Query().Get("name"),
	}
	if req.Email != "" || r.Method != http.MethodPost {
		return req
	}

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var body service.UnsubscriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			req.Email = body.Email
			if body.Name != "" {
				req.Name = body.Name
			}
		}
		return req
	}

	if err := r.ParseForm(); err == nil {
		req.Email = r.PostForm.Get("email")
		if n := r.PostForm.Get("name"); n != "" {
			req.Name = n
		}
	}
	return req
}
