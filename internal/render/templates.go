package render

const cardTemplate = `{{define "card"}}<div class="card" data-id="{{.ID}}">
  <img src="{{.Image}}" alt="{{.Title}}" class="card-image">
  <h3 class="card-title">{{.Title}}</h3>
  <p class="card-price">{{price .Price}}</p>
  <p class="card-rating">&#11088; {{rate .Rating.Rate}} ({{.Rating.Count}})</p>
  <p class="card-category">{{.Category}}</p>
</div>
{{end}}`

const gridTemplate = `{{define "grid"}}{{if .Products}}{{range .Products}}{{template "card" .}}{{end}}{{else}}<p class="grid-message">{{.Locale.T "No matching products."}}</p>{{end}}{{end}}`

const failureTemplate = `{{define "failure"}}<p class="grid-message grid-error">{{.Locale.T "An error occurred while loading the products."}}</p>{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="{{.Locale.Lang}}" dir="{{.Locale.Dir}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Locale.T "Catalog"}}</title>
  <link rel="stylesheet" href="/assets/browser.css">
</head>
<body>
  <form id="filters" class="filters" method="get" action="/">
    <input type="search" id="searchInput" name="q" value="{{.Query}}" placeholder="{{.Locale.T "Search products..."}}" autocomplete="off">
    <select id="categorySelect" name="category">
      {{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{end}}
    </select>
  </form>
  <div id="productsGrid" class="grid">{{if .Failed}}{{template "failure" .}}{{else}}{{template "grid" .}}{{end}}</div>
  <div id="productModal" class="modal{{if not .Overlay.Open}} hidden{{end}}">
    <div class="modal-panel">
      <button type="button" id="closeModal" class="modal-close" aria-label="{{.Locale.T "Close"}}">&times;</button>
      <img id="modalImage"{{with .Overlay.Image}} src="{{.}}"{{end}} alt="{{.Overlay.Title}}">
      <h2 id="modalTitle">{{.Overlay.Title}}</h2>
      <p id="modalPrice">{{.Overlay.Price}}</p>
      <p id="modalDescription">{{.Overlay.Description}}</p>
    </div>
  </div>
  <script src="/assets/browser.js"></script>
</body>
</html>
{{end}}`

const stylesheet = `.filters{display:flex;gap:.5rem;margin:1rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:1rem;margin:1rem}
.card{background:#fff;padding:1rem;border-radius:.5rem;box-shadow:0 1px 3px rgba(0,0,0,.15);cursor:pointer}
.card:hover{box-shadow:0 4px 8px rgba(0,0,0,.2)}
.card-image{width:100%;height:12rem;object-fit:contain;margin-bottom:.75rem}
.card-title{font-size:.875rem;font-weight:600;white-space:nowrap;overflow:hidden;text-overflow:ellipsis}
.card-price{color:#16a34a;font-weight:700}
.card-rating{color:#eab308;font-size:.875rem}
.card-category{color:#9ca3af;font-size:.75rem;margin-top:.5rem}
.grid-message{grid-column:1/-1;text-align:center;color:#6b7280}
.grid-error{color:#dc2626}
.modal{position:fixed;inset:0;background:rgba(0,0,0,.5);display:flex;align-items:center;justify-content:center}
.modal.hidden{display:none}
.modal-panel{background:#fff;border-radius:.5rem;padding:1.5rem;max-width:32rem;position:relative}
.modal-close{position:absolute;top:.5rem;right:.5rem}
#modalImage{max-height:16rem;object-fit:contain}
`

const script = `(function () {
  var form = document.getElementById("filters");
  var query = document.getElementById("searchInput");
  var category = document.getElementById("categorySelect");
  var grid = document.getElementById("productsGrid");
  var modal = document.getElementById("productModal");

  var gridSeq = 0;
  var gridAbort = null;

  // Only the response for the latest inputs may replace the grid.
  function refresh() {
    var seq = ++gridSeq;
    if (gridAbort) gridAbort.abort();
    gridAbort = new AbortController();

    var params = new URLSearchParams({ q: query.value, category: category.value });
    fetch("/grid?" + params.toString(), { signal: gridAbort.signal })
      .then(function (r) { return r.text(); })
      .then(function (html) { if (seq === gridSeq) grid.innerHTML = html; })
      .catch(function () {});
  }

  function paint(v) {
    var img = document.getElementById("modalImage");
    if (v.image) { img.src = v.image; } else { img.removeAttribute("src"); }
    img.alt = v.title;
    document.getElementById("modalTitle").textContent = v.title;
    document.getElementById("modalPrice").textContent = v.price;
    document.getElementById("modalDescription").textContent = v.description;
    modal.classList.toggle("hidden", !v.open);
  }

  var eventSeq = 0;
  var pending = Promise.resolve();

  // Events reach the server one at a time in the order they fired, and only
  // the reply to the latest one is painted.
  function send(ev) {
    var seq = ++eventSeq;
    pending = pending
      .then(function () {
        return fetch("/overlay/events", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify(ev)
        });
      })
      .then(function (r) { return r.ok ? r.json() : null; })
      .then(function (v) { if (v && seq === eventSeq) paint(v); })
      .catch(function () {});
    return pending;
  }

  query.addEventListener("input", refresh);
  category.addEventListener("change", refresh);
  form.addEventListener("submit", function (e) { e.preventDefault(); refresh(); });

  grid.addEventListener("click", function (e) {
    var card = e.target.closest("[data-id]");
    if (card) send({ type: "card_click", id: card.getAttribute("data-id") });
  });

  document.getElementById("closeModal").addEventListener("click", function (e) {
    e.stopPropagation();
    send({ type: "close" });
  });

  modal.addEventListener("click", function (e) {
    if (e.target === modal) send({ type: "backdrop_click", target: "backdrop" });
  });

  document.addEventListener("keydown", function (e) {
    if (e.key === "Escape" && !modal.classList.contains("hidden")) {
      send({ type: "keydown", key: e.key });
    }
  });
})();
`
