package http_page

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	usecase_browse "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/browse"
)

// Controller serves the browsing page itself: search input, genre select,
// card grid and the playback overlay. Everything dynamic goes through the
// JSON API; the page is just the shell plus the player script.
type Controller struct {
	uc  *usecase_browse.Usecase
	tpl *template.Template

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_browse.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		tpl:    template.Must(template.New("page").Parse(pageTpl)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.handlePage)
}

func (c *Controller) handlePage(ctx *gin.Context) {
	data := struct {
		Genres []string
	}{
		Genres: c.uc.Genres(),
	}

	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(http.StatusOK)
	if err := c.tpl.Execute(ctx.Writer, data); err != nil {
		c.logger.Error("failed to render page", slog.String("error", err.Error()))
	}
}

const pageTpl = `<!doctype html>
<html lang="es">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Pelis</title>
<script src="https://cdn.jsdelivr.net/npm/hls.js@1"></script>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;background:#14141c;color:#eee;max-width:1100px;margin:0 auto;padding:1rem}
header{display:flex;gap:12px;align-items:center;margin-bottom:1rem;flex-wrap:wrap}
header h1{font-size:1.4rem;margin:0;margin-right:auto}
input[type=search],select{background:#1f1f2a;color:#eee;border:1px solid #333;border-radius:6px;padding:8px 10px;font-size:0.95rem}
input[type=search]{min-width:220px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(180px,1fr));gap:14px}
.card{background:#1f1f2a;border-radius:8px;overflow:hidden;cursor:pointer;transition:transform .1s}
.card:hover{transform:scale(1.02)}
.card img{width:100%;aspect-ratio:2/3;object-fit:cover;display:block;background:#0c0c12}
.card .body{padding:8px 10px}
.card .title{font-weight:600}
.card .meta{color:#9a9ab0;font-size:0.8rem;margin-top:2px}
.empty{padding:3rem 0;text-align:center;color:#9a9ab0}
.overlay{position:fixed;inset:0;background:rgba(0,0,0,.75);display:flex;align-items:center;justify-content:center;z-index:10}
.overlay .box{background:#14141c;border-radius:10px;max-width:860px;width:94%;padding:14px;position:relative}
.overlay .close{position:absolute;top:8px;right:12px;background:none;border:none;color:#eee;font-size:1.4rem;cursor:pointer}
.overlay video{width:100%;border-radius:6px;background:#000}
.overlay h2{margin:10px 0 4px;font-size:1.1rem}
.overlay p{color:#b9b9cc;margin:4px 0 0;font-size:0.9rem}
.hint{color:#e0a84a;font-size:0.85rem;margin-top:6px}
</style>
<header>
  <h1>Pelis</h1>
  <input type="search" id="query" placeholder="Buscar películas..." autocomplete="off">
  <select id="genre">
    <option value="">Todos los géneros</option>
    {{range .Genres}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
</header>

<main id="grid" class="grid"></main>
<div id="empty" class="empty" hidden>No se encontraron películas.</div>
<div id="overlayRoot"></div>

<script>
(function(){
  var api = '/api/v1';
  var grid = document.getElementById('grid');
  var empty = document.getElementById('empty');
  var overlayRoot = document.getElementById('overlayRoot');
  var queryInput = document.getElementById('query');
  var genreSelect = document.getElementById('genre');
  var hls = null;
  var current = null;

  function esc(s){
    return String(s == null ? '' : s)
      .replace(/&/g,'&amp;').replace(/</g,'&lt;').replace(/>/g,'&gt;')
      .replace(/"/g,'&quot;').replace(/'/g,'&#39;');
  }

  function post(path, body){
    return fetch(api + path, {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: body ? JSON.stringify(body) : null
    });
  }

  function put(path, body){
    return fetch(api + path, {
      method: 'PUT',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body)
    });
  }

  function refresh(){
    var params = new URLSearchParams();
    if (queryInput.value) params.set('query', queryInput.value);
    if (genreSelect.value) params.set('genre', genreSelect.value);
    fetch(api + '/movies?' + params.toString())
      .then(function(res){ return res.json(); })
      .then(function(data){ render(data.movies || []); });
  }

  function render(movies){
    grid.innerHTML = '';
    empty.hidden = movies.length > 0;
    movies.forEach(function(m){
      var card = document.createElement('div');
      card.className = 'card';
      card.innerHTML =
        '<img loading="lazy" src="' + esc(m.poster_link) + '" alt="' + esc(m.title) + '">' +
        '<div class="body"><div class="title">' + esc(m.title) + '</div>' +
        '<div class="meta">' + esc(m.year) + ' · ' + esc((m.genres || []).join(', ')) + '</div></div>';
      card.addEventListener('click', function(){ select(m); });
      grid.appendChild(card);
    });
  }

  // Teardown is unconditional and runs before any new attach. Destroying
  // an already-destroyed session is a no-op.
  function releasePlayer(){
    if (hls) { hls.destroy(); hls = null; }
    var video = document.getElementById('player');
    if (video) { video.removeAttribute('src'); video.load(); }
  }

  function attachPlayer(video, manifest){
    if (video.canPlayType('application/vnd.apple.mpegurl')) {
      video.src = manifest;
      video.addEventListener('loadedmetadata', function(){ post('/playback/attached'); }, {once: true});
      return;
    }
    if (window.Hls && Hls.isSupported()) {
      hls = new Hls();
      hls.loadSource(manifest);
      hls.attachMedia(video);
      hls.on(Hls.Events.MANIFEST_PARSED, function(){ post('/playback/attached'); });
      return;
    }
    post('/playback/unsupported');
    var hint = document.getElementById('hint');
    if (hint) hint.hidden = false;
  }

  function openOverlay(m){
    overlayRoot.innerHTML =
      '<div class="overlay" id="overlay">' +
      '<div class="box">' +
      '<button class="close" id="closeBtn" aria-label="Cerrar">×</button>' +
      '<video id="player" controls autoplay playsinline></video>' +
      '<h2>' + esc(m.title) + ' (' + esc(m.year) + ')</h2>' +
      '<p>' + esc(m.overview) + '</p>' +
      '<div class="hint" id="hint" hidden>Este navegador no puede reproducir el video.</div>' +
      '</div></div>';

    document.getElementById('closeBtn').addEventListener('click', closeOverlay);
    document.getElementById('overlay').addEventListener('click', function(e){
      if (e.target === this) closeOverlay();
    });

    attachPlayer(document.getElementById('player'), m.manifest_link);
  }

  // The overlay renders nothing when closed and closing always releases
  // the player session, never one without the other.
  function closeOverlay(){
    releasePlayer();
    overlayRoot.innerHTML = '';
    current = null;
    post('/viewer/close');
  }

  function select(m){
    if (current) { releasePlayer(); overlayRoot.innerHTML = ''; }
    current = m;
    post('/viewer/select', {movie_id: m.id}).then(function(res){
      if (res.ok) openOverlay(m);
      else current = null;
    });
  }

  queryInput.addEventListener('input', function(){
    put('/viewer/query', {query: queryInput.value});
    refresh();
  });
  genreSelect.addEventListener('change', function(){
    put('/viewer/genre', {genre: genreSelect.value});
    refresh();
  });

  fetch(api + '/viewer')
    .then(function(res){ return res.json(); })
    .then(function(state){
      queryInput.value = state.query || '';
      genreSelect.value = state.genre || '';
      refresh();
    })
    .catch(refresh);
})();
</script>
`
