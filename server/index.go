package server

// indexPage is the interactive front end served at "/". It drives the same
// POST /simulate contract the API clients use.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Disk Scheduling Simulator</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  label { display: block; margin-top: 0.75rem; }
  input, select { width: 100%; padding: 0.4rem; margin-top: 0.25rem; }
  button { margin-top: 1rem; padding: 0.5rem 1.5rem; }
  pre { background: #f4f4f4; padding: 1rem; overflow-x: auto; }
  .error { color: #b00020; }
</style>
</head>
<body>
<h1>Disk Scheduling Simulator</h1>
<form id="form">
  <label>Requests (comma-separated tracks)
    <input name="requests" value="2, 8, 15, 20" required>
  </label>
  <label>Head position
    <input name="head" value="10" required>
  </label>
  <label>Disk size
    <input name="disk_size" value="25" required>
  </label>
  <label>Algorithm
    <select name="algorithm">
      <option>ALL</option>
      <option>FCFS</option>
      <option>SSTF</option>
      <option>SCAN</option>
      <option>C-SCAN</option>
      <option>LOOK</option>
      <option>C-LOOK</option>
    </select>
  </label>
  <button type="submit">Simulate</button>
</form>
<pre id="output"></pre>
<script>
document.getElementById("form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const f = new FormData(e.target);
  const body = {
    requests: f.get("requests").split(",").map(s => s.trim()).filter(s => s !== ""),
    head: f.get("head"),
    disk_size: f.get("disk_size"),
    algorithm: f.get("algorithm"),
  };
  const out = document.getElementById("output");
  out.classList.remove("error");
  try {
    const resp = await fetch("/simulate", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(body),
    });
    const data = await resp.json();
    if (!resp.ok) out.classList.add("error");
    out.textContent = JSON.stringify(data, null, 2);
  } catch (err) {
    out.classList.add("error");
    out.textContent = String(err);
  }
});
</script>
</body>
</html>
`
